package core

import (
	"context"
	"time"
)

// Turn is one recorded conversation entry. Role is "user" or "assistant";
// Agent names the producer for assistant turns.
type Turn struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	Agent          string    `json:"agent,omitempty"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationStore persists conversation turns keyed by conversation id.
// The core only requires a bounded, time-ordered history read and a caller
// display-name read; both payloads are opaque to it.
type ConversationStore interface {
	// AppendTurn records a turn at the end of the conversation.
	AppendTurn(ctx context.Context, turn Turn) error
	// History returns up to limit most recent turns, oldest first.
	History(ctx context.Context, conversationID string, limit int) ([]Turn, error)
	// DisplayName returns the caller's salutation text, or "" when unknown.
	DisplayName(ctx context.Context, userID string) (string, error)
}
