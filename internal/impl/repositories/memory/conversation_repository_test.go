package repositories_memory

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/drujensen/chatkeeper/internal/domain/entities"
	"github.com/drujensen/chatkeeper/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newConversation(username, content string) *entities.Conversation {
	return &entities.Conversation{
		Model:         "gpt-4o",
		CreatedBy:     username,
		LastUpdatedBy: username,
		Messages:      []entities.Message{{Role: entities.RoleUser, Content: content}},
	}
}

func TestSave_CreateAssignsIdentifiers(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())
	ctx := context.Background()

	saved, err := repo.Save(ctx, newConversation("alice", "Hello"))

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ConversationID)
	assert.False(t, saved.ID.IsZero())
	require.Len(t, saved.Messages, 1)
	assert.NotEmpty(t, saved.Messages[0].MessageID)
	assert.False(t, saved.Messages[0].CreatedDate.IsZero())
	assert.Equal(t, "alice", saved.CreatedBy)
	assert.Equal(t, "alice", saved.LastUpdatedBy)
	assert.Equal(t, "Hello", saved.Title)
	assert.Equal(t, saved.CreatedDate, saved.LastUpdatedDate)
}

func TestSave_UnknownIdentifierIsCreated(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())
	ctx := context.Background()

	conv := newConversation("alice", "Hello")
	conv.ConversationID = "client-chosen"
	saved, err := repo.Save(ctx, conv)

	require.NoError(t, err)
	assert.Equal(t, "client-chosen", saved.ConversationID)
}

func TestSave_UpdateAppendsAndKeepsCreationFields(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())
	ctx := context.Background()

	created, err := repo.Save(ctx, newConversation("alice", "Hello"))
	require.NoError(t, err)

	current := created
	for i := 0; i < 3; i++ {
		turn := &entities.Conversation{
			ConversationID: created.ConversationID,
			CreatedBy:      "mallory",
			LastUpdatedBy:  "bob",
			Messages:       []entities.Message{{Role: entities.RoleAssistant, Content: fmt.Sprintf("reply %d", i)}},
		}
		current, err = repo.Save(ctx, turn)
		require.NoError(t, err)
	}

	assert.Equal(t, created.ConversationID, current.ConversationID)
	assert.Equal(t, created.ID, current.ID)
	assert.Equal(t, created.CreatedBy, current.CreatedBy)
	assert.Equal(t, created.CreatedDate, current.CreatedDate)
	assert.Equal(t, "bob", current.LastUpdatedBy)
	assert.False(t, current.LastUpdatedDate.Before(created.LastUpdatedDate))
	assert.Equal(t, "Hello", current.Title)

	require.Len(t, current.Messages, 4)
	assert.Equal(t, created.Messages[0], current.Messages[0])
	for i, msg := range current.Messages[1:] {
		assert.Equal(t, fmt.Sprintf("reply %d", i), msg.Content)
		assert.NotEmpty(t, msg.MessageID)
	}
}

func TestSave_UpdateDoesNotClearFlags(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())
	ctx := context.Background()

	conv := newConversation("alice", "Hello")
	conv.IsStarred = true
	created, err := repo.Save(ctx, conv)
	require.NoError(t, err)

	updated, err := repo.Save(ctx, &entities.Conversation{
		ConversationID: created.ConversationID,
		Messages:       []entities.Message{{Role: entities.RoleAssistant, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.True(t, updated.IsStarred)
	assert.Equal(t, "gpt-4o", updated.Model)
}

func TestCreate_DuplicateConversationIDRejected(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())
	ctx := context.Background()

	first := newConversation("alice", "Hello")
	first.ConversationID = "same-id"
	_, err := repo.create(ctx, first)
	require.NoError(t, err)

	second := newConversation("bob", "Hi")
	second.ConversationID = "same-id"
	_, err = repo.create(ctx, second)

	require.Error(t, err)
	assert.IsType(t, &errs.DuplicateError{}, err)
}

func TestUpdate_VanishedConversationIsNotFound(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())

	_, err := repo.update(context.Background(), &entities.Conversation{ConversationID: "gone"})

	require.Error(t, err)
	assert.IsType(t, &errs.NotFoundError{}, err)
}

func TestSave_NilConversation(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())

	_, err := repo.Save(context.Background(), nil)

	assert.IsType(t, &errs.ValidationError{}, err)
}

func TestFind_PaginatesByCreatedDateDescending(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, err := repo.Save(ctx, newConversation("alice", fmt.Sprintf("question %d", i)))
		require.NoError(t, err)
	}
	_, err := repo.Save(ctx, newConversation("bob", "not yours"))
	require.NoError(t, err)

	filter := entities.ConversationFilter{CreatedBy: "alice"}
	first, err := repo.Find(ctx, filter, 1, 10, entities.DefaultSort)
	require.NoError(t, err)
	second, err := repo.Find(ctx, filter, 2, 10, entities.DefaultSort)
	require.NoError(t, err)

	require.Len(t, first, 10)
	require.Len(t, second, 5)
	assert.Equal(t, "question 14", first[0].Messages[0].Content)
	assert.Equal(t, "question 0", second[4].Messages[0].Content)

	all := append(first, second...)
	seen := make(map[string]bool)
	for i, conv := range all {
		assert.Equal(t, "alice", conv.CreatedBy)
		assert.False(t, seen[conv.ConversationID], "conversation listed twice")
		seen[conv.ConversationID] = true
		if i > 0 {
			assert.False(t, conv.CreatedDate.After(all[i-1].CreatedDate))
		}
	}

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(15), count)
}

func TestFind_ClampsInvalidPaging(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := repo.Save(ctx, newConversation("alice", "q"))
		require.NoError(t, err)
	}

	result, err := repo.Find(ctx, entities.ConversationFilter{}, 0, 0, entities.SortOrder{})
	require.NoError(t, err)
	assert.Len(t, result, 10)

	beyond, err := repo.Find(ctx, entities.ConversationFilter{}, 5, 10, entities.DefaultSort)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	assert.NotPanics(t, func() {
		huge, err := repo.Find(ctx, entities.ConversationFilter{CreatedBy: "alice"}, math.MaxInt64, 10, entities.DefaultSort)
		require.NoError(t, err)
		assert.Empty(t, huge)
	})
}

func TestFindByID_Projection(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())
	ctx := context.Background()

	saved, err := repo.Save(ctx, newConversation("alice", "Hello"))
	require.NoError(t, err)

	light, err := repo.FindByID(ctx, saved.ConversationID, entities.Projection{ExcludeMessages: true})
	require.NoError(t, err)
	assert.Nil(t, light.Messages)
	assert.Equal(t, saved.Title, light.Title)

	missing, err := repo.FindByID(ctx, "nope", entities.Projection{})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindMessages_EmptyWhenAbsent(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())
	ctx := context.Background()

	empty, err := repo.Save(ctx, &entities.Conversation{CreatedBy: "alice"})
	require.NoError(t, err)

	messages, err := repo.FindMessages(ctx, empty.ConversationID)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)

	messages, err = repo.FindMessages(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestFindFigure(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())
	ctx := context.Background()

	conv := newConversation("alice", "plot sales")
	conv.Messages = append(conv.Messages, entities.Message{
		Role:    entities.RoleAssistant,
		Content: "here you go",
		Figure:  map[string]any{"type": "bar"},
	})
	saved, err := repo.Save(ctx, conv)
	require.NoError(t, err)

	figure, err := repo.FindFigure(ctx, saved.ConversationID, saved.Messages[1].MessageID)
	require.NoError(t, err)
	assert.Equal(t, "bar", figure["type"])

	none, err := repo.FindFigure(ctx, saved.ConversationID, saved.Messages[0].MessageID)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSave_ReturnedCopiesAreIsolated(t *testing.T) {
	repo := NewMemoryConversationRepository(zap.NewNop())
	ctx := context.Background()

	saved, err := repo.Save(ctx, newConversation("alice", "Hello"))
	require.NoError(t, err)
	saved.Messages[0].Content = "tampered"

	reloaded, err := repo.FindByID(ctx, saved.ConversationID, entities.Projection{})
	require.NoError(t, err)
	assert.Equal(t, "Hello", reloaded.Messages[0].Content)
}
