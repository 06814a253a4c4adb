package agent

import (
	"context"
	"fmt"

	"github.com/drujensen/chatkeeper/internal/domain/entities"
	"github.com/drujensen/chatkeeper/internal/domain/interfaces"

	"go.uber.org/zap"
)

// PlaceholderAgentClient stands in for a real analysis agent. It echoes the
// user message back in a fixed template and never produces a figure.
type PlaceholderAgentClient struct {
	name   string
	logger *zap.Logger
}

func NewPlaceholderAgentClient(name string, logger *zap.Logger) *PlaceholderAgentClient {
	return &PlaceholderAgentClient{name: name, logger: logger}
}

func (a *PlaceholderAgentClient) Name() string {
	return a.name
}

func (a *PlaceholderAgentClient) Process(ctx context.Context, request *entities.AgentRequest) (*entities.AgentResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("agent request is required")
	}

	a.logger.Debug("Processing message",
		zap.String("agent", a.name),
		zap.String("conversation_id", request.ConversationID))

	return &entities.AgentResponse{
		Message: fmt.Sprintf("Here is the %s processed message: %s", a.name, request.Message),
	}, nil
}

var _ interfaces.AgentClient = (*PlaceholderAgentClient)(nil)
