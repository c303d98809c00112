package session

import (
	"time"

	"github.com/google/uuid"

	"calendar-booking-agent/pkg/gemini"
)

// Session holds the conversation state for one chat client. History carries
// the full multi-turn contents sent to the model, including function calls
// and their responses.
type Session struct {
	ID         string
	CalendarID string
	History    []gemini.Content
	CreatedAt  time.Time
}

// Append adds a content entry to the conversation history.
func (s *Session) Append(content gemini.Content) {
	s.History = append(s.History, content)
}

// Store keeps sessions in memory. Implementations must be safe for
// concurrent use; entries may disappear at any time once their TTL passes.
type Store interface {
	// Get returns the session with the given ID, or false if it does not
	// exist or has expired.
	Get(id string) (*Session, bool)

	// Put inserts or replaces a session.
	Put(s *Session)

	// Evict removes a session immediately.
	Evict(id string)
}

// NewSession mints a session with a fresh random ID.
func NewSession(calendarID string) *Session {
	return &Session{
		ID:         uuid.NewString(),
		CalendarID: calendarID,
		CreatedAt:  time.Now(),
	}
}
