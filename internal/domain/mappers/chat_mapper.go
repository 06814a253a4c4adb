package mappers

import (
	"github.com/drujensen/chatkeeper/internal/domain/entities"
)

// DefaultModel is recorded when a request does not name a model.
const DefaultModel = "gpt-4o"

// ChatMapper converts between the OpenAI compatible wire shapes and the
// stored conversation. It is stateless and never fails.
type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// ToModel builds a conversation from an inbound request. Message identifiers
// and audit fields are left for the repository and service.
func (m *ChatMapper) ToModel(request *entities.ChatCompletionRequest) *entities.Conversation {
	conversation := &entities.Conversation{
		Messages: make([]entities.Message, 0),
	}
	if request == nil {
		conversation.Model = DefaultModel
		return conversation
	}

	conversation.ConversationID = request.CompletionID
	conversation.Model = request.Model
	if conversation.Model == "" {
		conversation.Model = DefaultModel
	}
	for _, msg := range request.Messages {
		conversation.Messages = append(conversation.Messages, *entities.NewMessage(msg.Role, msg.Content))
	}

	return conversation
}

// ToSchema converts a stored conversation into a completion response. With
// convertLastMessage only the final message is returned as the single
// choice; otherwise every message becomes a choice in storage order.
func (m *ChatMapper) ToSchema(conversation *entities.Conversation, convertLastMessage bool) *entities.ChatCompletionResponse {
	response := &entities.ChatCompletionResponse{
		Object:  entities.ObjectChatCompletion,
		Choices: make([]entities.ChoiceResponse, 0),
	}
	if conversation == nil {
		return response
	}

	response.CompletionID = conversation.ConversationID
	response.Model = conversation.Model
	if !conversation.CreatedDate.IsZero() {
		response.Created = conversation.CreatedDate.Unix()
	}

	messages := conversation.Messages
	if convertLastMessage && len(messages) > 0 {
		messages = messages[len(messages)-1:]
	}
	for i, msg := range messages {
		response.Choices = append(response.Choices, entities.ChoiceResponse{
			Index:        i,
			Message:      m.ToMessageResponse(msg),
			FinishReason: entities.FinishReasonStop,
		})
	}

	return response
}

func (m *ChatMapper) ToSchemaList(conversations []*entities.Conversation, convertLastMessage bool) []*entities.ChatCompletionResponse {
	responses := make([]*entities.ChatCompletionResponse, 0, len(conversations))
	for _, conversation := range conversations {
		responses = append(responses, m.ToSchema(conversation, convertLastMessage))
	}
	return responses
}

func (m *ChatMapper) ToMessageResponse(msg entities.Message) entities.MessageResponse {
	return entities.MessageResponse{
		MessageID:   msg.MessageID,
		Role:        msg.Role,
		Content:     msg.Content,
		Figure:      msg.Figure,
		CreatedDate: msg.CreatedDate,
	}
}

func (m *ChatMapper) ToMessageResponses(messages []entities.Message) []entities.MessageResponse {
	responses := make([]entities.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, m.ToMessageResponse(msg))
	}
	return responses
}
