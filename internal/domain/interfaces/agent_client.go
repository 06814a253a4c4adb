package interfaces

import (
	"context"

	"github.com/drujensen/chatkeeper/internal/domain/entities"
)

// AgentClient produces the assistant reply for the latest user message.
type AgentClient interface {
	Name() string
	Process(ctx context.Context, request *entities.AgentRequest) (*entities.AgentResponse, error)
}
