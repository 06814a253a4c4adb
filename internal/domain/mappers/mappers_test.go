package mappers

import (
	"testing"
	"time"

	"github.com/drujensen/chatkeeper/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMapper_ToModel(t *testing.T) {
	mapper := NewChatMapper()

	conv := mapper.ToModel(&entities.ChatCompletionRequest{
		CompletionID: "c-1",
		Messages: []entities.ChatMessageRequest{
			{Role: entities.RoleSystem, Content: "Be brief"},
			{Role: entities.RoleUser, Content: "Hello"},
		},
	})

	assert.Equal(t, "c-1", conv.ConversationID)
	assert.Equal(t, DefaultModel, conv.Model)
	require.Len(t, conv.Messages, 2)
	for _, msg := range conv.Messages {
		assert.Empty(t, msg.MessageID)
		assert.Nil(t, msg.Figure)
		assert.True(t, msg.CreatedDate.IsZero())
	}
	assert.Empty(t, conv.CreatedBy)
	assert.True(t, conv.CreatedDate.IsZero())
}

func TestChatMapper_ToModelNil(t *testing.T) {
	conv := NewChatMapper().ToModel(nil)
	assert.Equal(t, DefaultModel, conv.Model)
	assert.Empty(t, conv.Messages)
}

func TestChatMapper_RoundTripPreservesRoleAndContent(t *testing.T) {
	mapper := NewChatMapper()
	request := &entities.ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []entities.ChatMessageRequest{
			{Role: entities.RoleSystem, Content: "Be brief"},
			{Role: entities.RoleUser, Content: "Hello"},
			{Role: entities.RoleAssistant, Content: "Hi"},
		},
	}

	conv := mapper.ToModel(request)
	now := entities.Timestamp()
	conv.ConversationID = "c-1"
	conv.CreatedDate = now
	for i := range conv.Messages {
		conv.Messages[i].MessageID = "m"
		conv.Messages[i].CreatedDate = now
	}

	response := mapper.ToSchema(conv, false)

	require.Len(t, response.Choices, 3)
	for i, choice := range response.Choices {
		assert.Equal(t, i, choice.Index)
		assert.Equal(t, request.Messages[i].Role, choice.Message.Role)
		assert.Equal(t, request.Messages[i].Content, choice.Message.Content)
		assert.Equal(t, entities.FinishReasonStop, choice.FinishReason)
	}
	assert.Equal(t, "gpt-4o-mini", response.Model)
	assert.Equal(t, now.Unix(), response.Created)
}

func TestChatMapper_ToSchemaLastMessage(t *testing.T) {
	created := time.Date(2025, 5, 22, 10, 54, 37, 0, time.UTC)
	conv := &entities.Conversation{
		ConversationID: "c-1",
		CreatedDate:    created,
		Messages: []entities.Message{
			{MessageID: "m-1", Role: entities.RoleUser, Content: "Hello"},
			{MessageID: "m-2", Role: entities.RoleAssistant, Content: "Hi", Figure: map[string]any{"type": "bar"}},
		},
	}

	response := NewChatMapper().ToSchema(conv, true)

	assert.Equal(t, "c-1", response.CompletionID)
	assert.Equal(t, entities.ObjectChatCompletion, response.Object)
	assert.Equal(t, created.Unix(), response.Created)
	require.Len(t, response.Choices, 1)
	assert.Equal(t, 0, response.Choices[0].Index)
	assert.Equal(t, "m-2", response.Choices[0].Message.MessageID)
	assert.Equal(t, "bar", response.Choices[0].Message.Figure["type"])
}

func TestChatMapper_ToSchemaMissingFields(t *testing.T) {
	mapper := NewChatMapper()

	response := mapper.ToSchema(&entities.Conversation{}, true)
	assert.Equal(t, int64(0), response.Created)
	assert.NotNil(t, response.Choices)
	assert.Empty(t, response.Choices)

	assert.NotNil(t, mapper.ToSchema(nil, false))
}

func TestConversationMapper_ToSchema(t *testing.T) {
	created := time.Date(2025, 5, 22, 10, 54, 37, 0, time.UTC)
	conv := &entities.Conversation{
		ConversationID:  "c-1",
		Title:           "Sales",
		CreatedDate:     created,
		LastUpdatedDate: created.Add(time.Minute),
		IsStarred:       true,
		Messages:        []entities.Message{{Content: "Show me sales"}, {Content: "Here they are"}},
	}

	item := NewConversationMapper().ToSchema(conv)

	assert.Equal(t, "c-1", item.CompletionID)
	assert.Equal(t, "Sales", item.Title)
	assert.Equal(t, created, item.CreateTime)
	assert.Equal(t, created.Add(time.Minute), item.UpdateTime)
	assert.True(t, item.IsStarred)
	assert.False(t, item.IsArchived)
	assert.Equal(t, entities.MemoryScopeGlobal, item.MemoryScope)
	assert.Equal(t, "Here they are", item.Snippet)
	assert.NotNil(t, item.SafeURLs)
}

func TestConversationMapper_TitleFallback(t *testing.T) {
	mapper := NewConversationMapper()

	long := mapper.ToSchema(&entities.Conversation{
		Messages: []entities.Message{{Content: "This question is longer than twenty characters"}},
	})
	assert.Equal(t, "This question is lon...", long.Title)

	short := mapper.ToSchema(&entities.Conversation{
		Messages: []entities.Message{{Content: "Short one"}},
	})
	assert.Equal(t, "Short one", short.Title)

	assert.Len(t, mapper.ToSchemaList([]*entities.Conversation{{}, {}}), 2)
}
