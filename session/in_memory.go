package session

import (
	"context"
	"sync"

	"github.com/morpheuslabs/sleepmesh/core"
)

// InMemoryStore is a volatile ConversationStore keeping turns in a process
// local map. It is safe for concurrent access and best suited for tests or
// ephemeral demo servers. Returned slices are copies to prevent external
// mutation of internal state.
type InMemoryStore struct {
	mu    sync.RWMutex
	turns map[string][]core.Turn
	names map[string]string
}

// NewInMemoryStore constructs an empty in-memory conversation store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		turns: make(map[string][]core.Turn),
		names: make(map[string]string),
	}
}

// AppendTurn records a turn at the end of the conversation.
func (s *InMemoryStore) AppendTurn(_ context.Context, turn core.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[turn.ConversationID] = append(s.turns[turn.ConversationID], turn)
	return nil
}

// History returns up to limit most recent turns, oldest first.
func (s *InMemoryStore) History(_ context.Context, conversationID string, limit int) ([]core.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.turns[conversationID]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	out := make([]core.Turn, len(all))
	copy(out, all)
	return out, nil
}

// DisplayName returns the registered salutation for a user, or "".
func (s *InMemoryStore) DisplayName(_ context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.names[userID], nil
}

// SetDisplayName registers a salutation for a user.
func (s *InMemoryStore) SetDisplayName(userID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[userID] = name
}
