package agent

import (
	"context"
	"testing"

	"github.com/drujensen/chatkeeper/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPlaceholderAgentClient_Process(t *testing.T) {
	client := NewPlaceholderAgentClient("ChatAgentClient", zap.NewNop())

	response, err := client.Process(context.Background(), &entities.AgentRequest{Message: "Hello"})

	require.NoError(t, err)
	assert.Equal(t, "Here is the ChatAgentClient processed message: Hello", response.Message)
	assert.Nil(t, response.Figure)
	assert.Equal(t, "ChatAgentClient", client.Name())
}

func TestPlaceholderAgentClient_CancelledContext(t *testing.T) {
	client := NewPlaceholderAgentClient("ChatAgentClient", zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	response, err := client.Process(ctx, &entities.AgentRequest{Message: "Hello"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, response)
}
