// Package repositories holds the behaviour shared by every
// ConversationRepository variant: identifier assignment, audit stamping and
// pagination rules.
package repositories

import (
	"math"
	"time"

	"github.com/drujensen/chatkeeper/internal/domain/entities"

	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// NonUpdatableFields are never written by the update path of Save.
var NonUpdatableFields = []string{"_id", "conversation_id", "created_by", "created_date"}

// NewID returns a fresh identifier for conversations and messages.
func NewID() string {
	return uuid.New().String()
}

// PrepareCreate fills in everything a new conversation needs before insert:
// a conversation_id when absent, audit fields, a derived title and message
// identifiers.
func PrepareCreate(conv *entities.Conversation, now time.Time) {
	if conv.ConversationID == "" {
		conv.ConversationID = NewID()
	}
	if conv.CreatedBy == "" {
		conv.CreatedBy = conv.LastUpdatedBy
	}
	if conv.LastUpdatedBy == "" {
		conv.LastUpdatedBy = conv.CreatedBy
	}
	conv.CreatedDate = now
	conv.LastUpdatedDate = now
	if conv.Messages == nil {
		conv.Messages = make([]entities.Message, 0)
	}
	if conv.Title == "" {
		conv.Title = conv.DeriveTitle()
	}
	StampMessages(conv.Messages, now)
}

// StampMessages assigns message_id and created_date where they are missing.
func StampMessages(messages []entities.Message, now time.Time) {
	for i := range messages {
		if messages[i].MessageID == "" {
			messages[i].MessageID = NewID()
		}
		if messages[i].CreatedDate.IsZero() {
			messages[i].CreatedDate = now
		}
	}
}

// NormalizePage clamps a 1-indexed page and a limit and returns the number
// of records to skip together with the effective limit. Pages far past the
// end are capped so that skip+limit never overflows.
func NormalizePage(page, limit int) (skip int, effectiveLimit int) {
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return (page - 1) * limit, limit
}

// NormalizeSort falls back to DefaultSort for unknown fields.
func NormalizeSort(sort entities.SortOrder) entities.SortOrder {
	switch sort.Field {
	case entities.SortByCreatedDate, entities.SortByLastUpdatedDate:
		return sort
	}
	return entities.DefaultSort
}
