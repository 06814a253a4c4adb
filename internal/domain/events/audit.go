package events

import (
	"go.uber.org/zap"
)

// SubscribeAuditLog records every created conversation and persisted turn
// on the given logger. The returned function removes both subscriptions.
func SubscribeAuditLog(logger *zap.Logger) func() {
	audit := logger.Named("audit")

	unsubscribeCreated := SubscribeToConversationCreatedEvents(func(data ConversationCreatedEventData) {
		audit.Info("Conversation created",
			zap.String("conversation_id", data.ConversationID),
			zap.String("username", data.Username),
			zap.String("title", data.Title))
	})
	unsubscribeUpdated := SubscribeToConversationUpdatedEvents(func(data ConversationUpdatedEventData) {
		audit.Info("Conversation updated",
			zap.String("conversation_id", data.ConversationID),
			zap.String("username", data.Username),
			zap.String("message_id", data.Message.MessageID),
			zap.String("role", data.Message.Role))
	})

	return func() {
		unsubscribeCreated()
		unsubscribeUpdated()
	}
}
