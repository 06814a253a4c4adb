package entities

import "time"

const MemoryScopeGlobal = "global_enabled"

// ConversationItemResponse is the metadata view of a conversation, without
// message bodies.
type ConversationItemResponse struct {
	CompletionID string    `json:"completion_id"`
	Title        string    `json:"title"`
	CreateTime   time.Time `json:"create_time"`
	UpdateTime   time.Time `json:"update_time"`
	IsArchived   bool      `json:"is_archived"`
	IsStarred    bool      `json:"is_starred"`
	MemoryScope  string    `json:"memory_scope"`
	SafeURLs     []string  `json:"safe_urls"`
	BlockedURLs  []string  `json:"blocked_urls"`
	Snippet      string    `json:"snippet,omitempty"`
}

type ConversationListResponse struct {
	Items  []ConversationItemResponse `json:"items"`
	Total  int64                      `json:"total"`
	Limit  int                        `json:"limit"`
	Offset int                        `json:"offset"`
}
