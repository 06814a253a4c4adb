package entities

import (
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one turn of a conversation. MessageID and CreatedDate are
// assigned by the repository when the message is persisted.
type Message struct {
	MessageID   string         `json:"message_id" bson:"message_id"`
	Role        string         `json:"role" bson:"role"`
	Content     string         `json:"content" bson:"content"`
	Figure      map[string]any `json:"figure" bson:"figure"`
	CreatedDate time.Time      `json:"created_date" bson:"created_date"`
}

func NewMessage(role, content string) *Message {
	return &Message{
		Role:    role,
		Content: content,
	}
}

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}
