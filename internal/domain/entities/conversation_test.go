package entities

import (
	"testing"
	"time"
)

func TestConversation_DeriveTitle(t *testing.T) {
	conv := &Conversation{
		Messages: []Message{
			{Role: RoleSystem, Content: "You are helpful"},
			{Role: RoleUser, Content: "What is the weather like in Istanbul today?"},
		},
	}

	expected := "What is the weather "
	if title := conv.DeriveTitle(); title != expected {
		t.Errorf("Expected title %q, got %q", expected, title)
	}
}

func TestConversation_DeriveTitleShortAndEmpty(t *testing.T) {
	conv := &Conversation{Messages: []Message{{Role: RoleUser, Content: "Hi"}}}
	if title := conv.DeriveTitle(); title != "Hi" {
		t.Errorf("Expected title 'Hi', got %q", title)
	}

	empty := &Conversation{}
	if title := empty.DeriveTitle(); title != "" {
		t.Errorf("Expected empty title, got %q", title)
	}
}

func TestTruncate_Runes(t *testing.T) {
	if got := Truncate("günaydın dünya", 8); got != "günaydın" {
		t.Errorf("Expected 'günaydın', got %q", got)
	}
}

func TestConversation_LastMessage(t *testing.T) {
	conv := &Conversation{}
	if conv.LastMessage() != nil {
		t.Error("Expected nil last message for empty conversation")
	}

	conv.Messages = []Message{{Content: "a"}, {Content: "b"}}
	if last := conv.LastMessage(); last == nil || last.Content != "b" {
		t.Errorf("Expected last message 'b', got %v", last)
	}
}

func TestConversation_Clone(t *testing.T) {
	conv := &Conversation{
		ConversationID: "c1",
		Messages: []Message{
			{MessageID: "m1", Content: "plot", Figure: map[string]any{"type": "bar"}},
		},
		CreatedDate: time.Now(),
	}

	clone := conv.Clone()
	clone.Messages[0].Content = "changed"
	clone.Messages[0].Figure["type"] = "line"
	clone.Messages = append(clone.Messages, Message{MessageID: "m2"})

	if conv.Messages[0].Content != "plot" {
		t.Errorf("Expected original content to be untouched, got %s", conv.Messages[0].Content)
	}
	if conv.Messages[0].Figure["type"] != "bar" {
		t.Errorf("Expected original figure to be untouched, got %v", conv.Messages[0].Figure["type"])
	}
	if len(conv.Messages) != 1 {
		t.Errorf("Expected 1 message in original, got %d", len(conv.Messages))
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleUser, RoleAssistant, RoleSystem} {
		if !ValidRole(role) {
			t.Errorf("Expected role %s to be valid", role)
		}
	}
	if ValidRole("tool") {
		t.Error("Expected role 'tool' to be invalid")
	}
}

func TestTimestamp_MillisecondUTC(t *testing.T) {
	ts := Timestamp()
	if ts.Location() != time.UTC {
		t.Errorf("Expected UTC timestamp, got %v", ts.Location())
	}
	if ts.Nanosecond()%int(time.Millisecond) != 0 {
		t.Errorf("Expected millisecond precision, got %d ns", ts.Nanosecond())
	}
}
