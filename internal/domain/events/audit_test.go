package events

import (
	"testing"
	"time"

	"github.com/drujensen/chatkeeper/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSubscribeAuditLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	unsubscribe := SubscribeAuditLog(zap.New(core))

	PublishConversationCreatedEvent(&entities.Conversation{ConversationID: "c-audit", CreatedBy: "alice", Title: "Hello"})
	PublishConversationUpdatedEvent("c-audit", "alice", []entities.Message{{MessageID: "m-1", Role: entities.RoleUser}})

	assert.Eventually(t, func() bool {
		return logs.FilterField(zap.String("conversation_id", "c-audit")).Len() == 2
	}, time.Second, 10*time.Millisecond)

	created := logs.FilterMessage("Conversation created").FilterField(zap.String("conversation_id", "c-audit")).All()
	require.Len(t, created, 1)
	assert.Equal(t, "audit", created[0].LoggerName)
	assert.Equal(t, "Hello", created[0].ContextMap()["title"])

	updated := logs.FilterMessage("Conversation updated").FilterField(zap.String("conversation_id", "c-audit")).All()
	require.Len(t, updated, 1)
	assert.Equal(t, "m-1", updated[0].ContextMap()["message_id"])
	assert.Equal(t, "user", updated[0].ContextMap()["role"])

	unsubscribe()
	PublishConversationCreatedEvent(&entities.Conversation{ConversationID: "c-after", CreatedBy: "alice"})
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, logs.FilterField(zap.String("conversation_id", "c-after")).Len())
}
