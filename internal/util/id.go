package util

import "github.com/google/uuid"

// NewID returns a new random identifier for turns and conversations.
func NewID() string {
	return uuid.NewString()
}
