package entities

type ChatMessageRequest struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"Hello"`
}

// ChatCompletionRequest is the OpenAI compatible body of POST /v1/chat/completions.
// CompletionID continues an existing conversation when set.
type ChatCompletionRequest struct {
	Model        string               `json:"model" example:"gpt-4o"`
	CompletionID string               `json:"completion_id,omitempty"`
	Messages     []ChatMessageRequest `json:"messages"`
	Stream       bool                 `json:"stream,omitempty"`
}

func (r *ChatCompletionRequest) LastMessage() *ChatMessageRequest {
	if len(r.Messages) == 0 {
		return nil
	}
	return &r.Messages[len(r.Messages)-1]
}
