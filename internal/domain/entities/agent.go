package entities

// AgentRequest carries the latest user message to the agent client.
type AgentRequest struct {
	ConversationID string
	Username       string
	Message        string
}

// AgentResponse is the assistant turn produced by the agent client.
type AgentResponse struct {
	Message string
	Figure  map[string]any
}
