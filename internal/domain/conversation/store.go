package conversation

import (
	"errors"
	"sync"
)

// ErrNoConversations is returned when a store would be built without scripts.
var ErrNoConversations = errors.New("conversation store requires at least one conversation")

// Store cycles through scripted conversations. The cursor is shared by every
// caller; it is not tied to a chat session.
type Store struct {
	mu            sync.Mutex
	conversations []Conversation
	current       int
}

// NewStore builds a store positioned on the last conversation, so that the
// first SelectNext wraps around to index 0.
func NewStore(conversations []Conversation) (*Store, error) {
	if len(conversations) == 0 {
		return nil, ErrNoConversations
	}
	copied := make([]Conversation, len(conversations))
	copy(copied, conversations)
	return &Store{
		conversations: copied,
		current:       len(copied) - 1,
	}, nil
}

// SelectNext advances the cursor by one, wrapping around, and returns the
// selected index and conversation.
func (s *Store) SelectNext() (int, Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = (s.current + 1) % len(s.conversations)
	return s.current, s.conversations[s.current]
}

// Len returns the number of conversations.
func (s *Store) Len() int {
	return len(s.conversations)
}
