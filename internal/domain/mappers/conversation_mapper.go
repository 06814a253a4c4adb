package mappers

import (
	"github.com/drujensen/chatkeeper/internal/domain/entities"
)

const snippetLength = 100

// ConversationMapper produces the metadata view used by the conversation
// history endpoints.
type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToSchema(conversation *entities.Conversation) entities.ConversationItemResponse {
	item := entities.ConversationItemResponse{
		MemoryScope: entities.MemoryScopeGlobal,
		SafeURLs:    []string{},
		BlockedURLs: []string{},
	}
	if conversation == nil {
		return item
	}

	item.CompletionID = conversation.ConversationID
	item.Title = conversation.Title
	item.CreateTime = conversation.CreatedDate
	item.UpdateTime = conversation.LastUpdatedDate
	item.IsArchived = conversation.IsArchived
	item.IsStarred = conversation.IsStarred

	if item.Title == "" && len(conversation.Messages) > 0 {
		first := conversation.Messages[0].Content
		item.Title = entities.Truncate(first, entities.TitleLength)
		if item.Title != first {
			item.Title += "..."
		}
	}
	if last := conversation.LastMessage(); last != nil {
		item.Snippet = entities.Truncate(last.Content, snippetLength)
	}

	return item
}

func (m *ConversationMapper) ToSchemaList(conversations []*entities.Conversation) []entities.ConversationItemResponse {
	items := make([]entities.ConversationItemResponse, 0, len(conversations))
	for _, conversation := range conversations {
		items = append(items, m.ToSchema(conversation))
	}
	return items
}
