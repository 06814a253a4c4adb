package events

import (
	"github.com/drujensen/chatkeeper/internal/domain/entities"
	"github.com/kelindar/event"
)

// Event types
const (
	ConversationUpdatedEventType uint32 = 1
	ConversationCreatedEventType uint32 = 2
)

// ConversationUpdatedEventData is published after a turn has been persisted
type ConversationUpdatedEventData struct {
	ConversationID string
	Username       string
	Message        entities.Message
}

// ConversationCreatedEventData is published when a new conversation record is inserted
type ConversationCreatedEventData struct {
	ConversationID string
	Username       string
	Title          string
}

// Type implements the Event interface
func (m ConversationUpdatedEventData) Type() uint32 {
	return ConversationUpdatedEventType
}

// Type implements the Event interface
func (c ConversationCreatedEventData) Type() uint32 {
	return ConversationCreatedEventType
}

// PublishConversationUpdatedEvent publishes one event per persisted turn
func PublishConversationUpdatedEvent(conversationID, username string, messages []entities.Message) {
	for _, msg := range messages {
		event.Emit(ConversationUpdatedEventData{ConversationID: conversationID, Username: username, Message: msg})
	}
}

// SubscribeToConversationUpdatedEvents subscribes to conversation updated events
func SubscribeToConversationUpdatedEvents(handler func(data ConversationUpdatedEventData)) func() {
	return event.On(handler)
}

// PublishConversationCreatedEvent publishes a conversation created event
func PublishConversationCreatedEvent(conversation *entities.Conversation) {
	event.Emit(ConversationCreatedEventData{
		ConversationID: conversation.ConversationID,
		Username:       conversation.CreatedBy,
		Title:          conversation.Title,
	})
}

// SubscribeToConversationCreatedEvents subscribes to conversation created events
func SubscribeToConversationCreatedEvents(handler func(data ConversationCreatedEventData)) func() {
	return event.On(handler)
}
