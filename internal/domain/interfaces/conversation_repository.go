package interfaces

import (
	"context"

	"github.com/drujensen/chatkeeper/internal/domain/entities"
)

// ConversationRepository is the only component that talks to the document
// store. Save is an upsert keyed by ConversationID: a missing or unknown
// identifier creates a conversation, a known one appends the record's
// messages to it. Lookups return nil (not an error) when nothing matches.
type ConversationRepository interface {
	Save(ctx context.Context, conversation *entities.Conversation) (*entities.Conversation, error)
	Find(ctx context.Context, filter entities.ConversationFilter, page, limit int, sort entities.SortOrder) ([]*entities.Conversation, error)
	Count(ctx context.Context, filter entities.ConversationFilter) (int64, error)
	FindByID(ctx context.Context, conversationID string, projection entities.Projection) (*entities.Conversation, error)
	FindMessages(ctx context.Context, conversationID string) ([]entities.Message, error)
	FindFigure(ctx context.Context, conversationID, messageID string) (map[string]any, error)
}
