package entities

import "time"

const (
	ObjectChatCompletion = "chat.completion"
	FinishReasonStop     = "stop"
)

type MessageResponse struct {
	MessageID   string         `json:"message_id"`
	Role        string         `json:"role"`
	Content     string         `json:"content"`
	Figure      map[string]any `json:"figure"`
	CreatedDate time.Time      `json:"created_date"`
}

type ChoiceResponse struct {
	Index        int             `json:"index"`
	Message      MessageResponse `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatCompletionResponse struct {
	CompletionID string           `json:"completion_id"`
	Object       string           `json:"object"`
	Model        string           `json:"model"`
	Created      int64            `json:"created"`
	Choices      []ChoiceResponse `json:"choices"`
	Usage        *Usage           `json:"usage,omitempty"`
}
