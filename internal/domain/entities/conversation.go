package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TitleLength is the number of leading characters of the first user
// message used as a conversation title.
const TitleLength = 20

// Conversation is one stored multi-turn chat completion. ID belongs to the
// document store; ConversationID is the public identifier and never changes
// once assigned.
type Conversation struct {
	ID              primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ConversationID  string             `json:"conversation_id" bson:"conversation_id"`
	Model           string             `json:"model" bson:"model"`
	Messages        []Message          `json:"messages" bson:"messages"`
	Title           string             `json:"title" bson:"title"`
	IsArchived      bool               `json:"is_archived" bson:"is_archived"`
	IsStarred       bool               `json:"is_starred" bson:"is_starred"`
	CreatedBy       string             `json:"created_by" bson:"created_by"`
	CreatedDate     time.Time          `json:"created_date" bson:"created_date"`
	LastUpdatedBy   string             `json:"last_updated_by" bson:"last_updated_by"`
	LastUpdatedDate time.Time          `json:"last_updated_date" bson:"last_updated_date"`
}

// LastMessage returns the most recent message or nil for an empty conversation.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

// DeriveTitle returns the leading characters of the first user message, or
// of the first message when no user message exists.
func (c *Conversation) DeriveTitle() string {
	if len(c.Messages) == 0 {
		return ""
	}
	source := c.Messages[0].Content
	for _, msg := range c.Messages {
		if msg.Role == RoleUser {
			source = msg.Content
			break
		}
	}
	return Truncate(source, TitleLength)
}

// Clone returns a deep copy so callers never share message slices or
// figure maps with a store.
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Messages != nil {
		clone.Messages = make([]Message, len(c.Messages))
		for i, msg := range c.Messages {
			clone.Messages[i] = msg
			clone.Messages[i].Figure = cloneFigure(msg.Figure)
		}
	}
	return &clone
}

// Truncate shortens s to at most n characters without splitting a rune.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Timestamp is the clock used for audit fields. Values are UTC and
// truncated to milliseconds, the precision of BSON dates.
func Timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func cloneFigure(figure map[string]any) map[string]any {
	if figure == nil {
		return nil
	}
	out := make(map[string]any, len(figure))
	for k, v := range figure {
		out[k] = v
	}
	return out
}
