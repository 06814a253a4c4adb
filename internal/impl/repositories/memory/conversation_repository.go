package repositories_memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/drujensen/chatkeeper/internal/domain/entities"
	"github.com/drujensen/chatkeeper/internal/domain/errs"
	"github.com/drujensen/chatkeeper/internal/domain/interfaces"
	"github.com/drujensen/chatkeeper/internal/impl/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type entry struct {
	seq          uint64
	conversation *entities.Conversation
}

// MemoryConversationRepository is the embedded store used for local runs and
// tests. It keeps one entry per conversation_id, so a second create for the
// same identifier is rejected the same way the unique index rejects it in
// MongoDB.
type MemoryConversationRepository struct {
	mu     sync.RWMutex
	data   map[string]*entry
	seq    uint64
	logger *zap.Logger
}

func NewMemoryConversationRepository(logger *zap.Logger) *MemoryConversationRepository {
	return &MemoryConversationRepository{
		data:   make(map[string]*entry),
		logger: logger,
	}
}

func (r *MemoryConversationRepository) Save(ctx context.Context, conversation *entities.Conversation) (*entities.Conversation, error) {
	if conversation == nil {
		return nil, errs.ValidationErrorf("conversation is required")
	}

	if conversation.ConversationID != "" {
		existing, err := r.FindByID(ctx, conversation.ConversationID, entities.Projection{ExcludeMessages: true})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return r.update(ctx, conversation)
		}
	}

	return r.create(ctx, conversation)
}

func (r *MemoryConversationRepository) create(ctx context.Context, conversation *entities.Conversation) (*entities.Conversation, error) {
	record := conversation.Clone()
	repositories.PrepareCreate(record, entities.Timestamp())
	record.ID = primitive.NewObjectID()

	r.mu.Lock()
	if _, exists := r.data[record.ConversationID]; exists {
		r.mu.Unlock()
		return nil, errs.DuplicateErrorf("conversation already exists: %s", record.ConversationID)
	}
	r.seq++
	r.data[record.ConversationID] = &entry{seq: r.seq, conversation: record}
	r.mu.Unlock()

	r.logger.Debug("Created conversation",
		zap.String("conversation_id", record.ConversationID),
		zap.Int("messages", len(record.Messages)))

	return r.reload(ctx, record.ConversationID)
}

func (r *MemoryConversationRepository) update(ctx context.Context, conversation *entities.Conversation) (*entities.Conversation, error) {
	now := entities.Timestamp()

	r.mu.Lock()
	stored, ok := r.data[conversation.ConversationID]
	if !ok {
		r.mu.Unlock()
		return nil, errs.NotFoundErrorf("conversation not found: %s", conversation.ConversationID)
	}
	applyUpdate(stored.conversation, conversation, now)
	r.mu.Unlock()

	r.logger.Debug("Updated conversation",
		zap.String("conversation_id", conversation.ConversationID),
		zap.Int("appended", len(conversation.Messages)))

	return r.reload(ctx, conversation.ConversationID)
}

func (r *MemoryConversationRepository) reload(ctx context.Context, conversationID string) (*entities.Conversation, error) {
	saved, err := r.FindByID(ctx, conversationID, entities.Projection{})
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, errs.NotFoundErrorf("conversation not found after save: %s", conversationID)
	}
	return saved, nil
}

// applyUpdate mirrors the $set/$push document built for MongoDB: identity and
// creation fields are never touched, zero values are not written and new
// messages are appended.
func applyUpdate(stored, update *entities.Conversation, now time.Time) {
	if update.Model != "" {
		stored.Model = update.Model
	}
	if update.Title != "" {
		stored.Title = update.Title
	}
	if update.IsArchived {
		stored.IsArchived = true
	}
	if update.IsStarred {
		stored.IsStarred = true
	}
	if update.LastUpdatedBy != "" {
		stored.LastUpdatedBy = update.LastUpdatedBy
	}
	stored.LastUpdatedDate = now

	appended := update.Clone().Messages
	repositories.StampMessages(appended, now)
	stored.Messages = append(stored.Messages, appended...)
}

func (r *MemoryConversationRepository) Find(ctx context.Context, filter entities.ConversationFilter, page, limit int, order entities.SortOrder) ([]*entities.Conversation, error) {
	skip, limit := repositories.NormalizePage(page, limit)
	order = repositories.NormalizeSort(order)

	r.mu.RLock()
	matches := make([]*entry, 0, len(r.data))
	for _, e := range r.data {
		if matchesFilter(e.conversation, filter) {
			matches = append(matches, &entry{seq: e.seq, conversation: e.conversation.Clone()})
		}
	}
	r.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		a, b := sortKey(matches[i].conversation, order.Field), sortKey(matches[j].conversation, order.Field)
		if a.Equal(b) {
			if order.Descending {
				return matches[i].seq > matches[j].seq
			}
			return matches[i].seq < matches[j].seq
		}
		if order.Descending {
			return a.After(b)
		}
		return a.Before(b)
	})

	conversations := make([]*entities.Conversation, 0, limit)
	if skip < 0 || skip >= len(matches) {
		return conversations, nil
	}
	end := min(skip+limit, len(matches))
	for _, e := range matches[skip:end] {
		conversations = append(conversations, e.conversation)
	}

	return conversations, nil
}

func (r *MemoryConversationRepository) Count(ctx context.Context, filter entities.ConversationFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, e := range r.data {
		if matchesFilter(e.conversation, filter) {
			count++
		}
	}
	return count, nil
}

func (r *MemoryConversationRepository) FindByID(ctx context.Context, conversationID string, projection entities.Projection) (*entities.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.data[conversationID]
	if !ok {
		return nil, nil
	}

	conversation := e.conversation.Clone()
	if projection.ExcludeMessages {
		conversation.Messages = nil
	}
	return conversation, nil
}

func (r *MemoryConversationRepository) FindMessages(ctx context.Context, conversationID string) ([]entities.Message, error) {
	conversation, err := r.FindByID(ctx, conversationID, entities.Projection{})
	if err != nil {
		return nil, err
	}
	if conversation == nil || conversation.Messages == nil {
		return []entities.Message{}, nil
	}
	return conversation.Messages, nil
}

func (r *MemoryConversationRepository) FindFigure(ctx context.Context, conversationID, messageID string) (map[string]any, error) {
	messages, err := r.FindMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	for _, msg := range messages {
		if msg.MessageID == messageID {
			return msg.Figure, nil
		}
	}
	return nil, nil
}

func matchesFilter(conversation *entities.Conversation, filter entities.ConversationFilter) bool {
	return filter.CreatedBy == "" || conversation.CreatedBy == filter.CreatedBy
}

func sortKey(conversation *entities.Conversation, field string) time.Time {
	if field == entities.SortByLastUpdatedDate {
		return conversation.LastUpdatedDate
	}
	return conversation.CreatedDate
}

var _ interfaces.ConversationRepository = (*MemoryConversationRepository)(nil)
