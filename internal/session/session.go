// Package session implements server-side sessions referenced by a
// signed cookie. The cookie carries only a session id; the record
// itself (user id, flash messages) lives in a Store.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session id has no live record,
// e.g. after logout or store expiry.
var ErrNotFound = errors.New("session: not found")

// Session is the server-side session record.
type Session struct {
	ID        string   `json:"id"`         // Opaque identifier carried by the cookie
	UserID    uint     `json:"user_id"`    // 0 for anonymous flash-only sessions
	Flashes   []string `json:"flashes"`    // One-shot messages shown on the next page render
	CreatedAt int64    `json:"created_at"` // Unix seconds
}

// Authenticated reports whether the session belongs to a logged-in user.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

// Store persists session records.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
