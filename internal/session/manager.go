package session

import (
	"time"

	"expense_splitter/internal/utils" // Signed cookie helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Session identifiers
	"github.com/sirupsen/logrus" // Logging library
)

// CookieName is the name of the signed session cookie.
const CookieName = "session"

// DefaultTTL is how long a session record lives without re-login.
const DefaultTTL = 24 * time.Hour

// Manager issues, resolves and destroys sessions for HTTP requests.
type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
	secure bool // Mark cookies Secure in production
}

// NewManager creates a session manager over the given store
func NewManager(store Store, secret string, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{store: store, secret: secret, ttl: ttl, secure: secure}
}

// Start creates a fresh session record for userID (0 for anonymous)
// and sets the signed cookie on the response.
func (m *Manager) Start(c *gin.Context, userID uint) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().Unix(),
	}
	if err := m.store.Save(c.Request.Context(), s, m.ttl); err != nil {
		return nil, err
	}
	token, err := utils.SignSessionToken(s.ID, m.secret, m.ttl)
	if err != nil {
		return nil, err
	}
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return s, nil
}

// Current resolves the request's session. A missing cookie, a bad
// signature, or a deleted/expired record all return ErrNotFound.
func (m *Manager) Current(c *gin.Context) (*Session, error) {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return nil, ErrNotFound
	}
	claims, err := utils.ParseSessionToken(token, m.secret)
	if err != nil {
		return nil, ErrNotFound
	}
	return m.store.Get(c.Request.Context(), claims.SessionID)
}

// Save persists a mutated session record, refreshing its TTL
func (m *Manager) Save(c *gin.Context, s *Session) error {
	return m.store.Save(c.Request.Context(), s, m.ttl)
}

// Clear deletes the session record and expires the cookie
func (m *Manager) Clear(c *gin.Context) {
	if s, err := m.Current(c); err == nil {
		if err := m.store.Delete(c.Request.Context(), s.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"session_id": s.ID,
				"error":      err.Error(),
			}).Warn("Failed to delete session record")
		}
	}
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

// Flash queues a one-shot message for the next rendered page. It
// reuses the request's session when one exists and otherwise starts
// an anonymous one so logged-out flows (bad login, logout) can still
// carry a message.
func (m *Manager) Flash(c *gin.Context, msg string) {
	s, err := m.Current(c)
	if err != nil {
		if s, err = m.Start(c, 0); err != nil {
			logrus.WithField("error", err.Error()).Warn("Failed to start flash session")
			return
		}
	}
	s.Flashes = append(s.Flashes, msg)
	if err := m.Save(c, s); err != nil {
		logrus.WithField("error", err.Error()).Warn("Failed to save flash message")
	}
}

// PopFlashes drains queued flash messages from the session
func (m *Manager) PopFlashes(c *gin.Context, s *Session) []string {
	if s == nil || len(s.Flashes) == 0 {
		return nil
	}
	flashes := s.Flashes
	s.Flashes = nil
	if err := m.Save(c, s); err != nil {
		logrus.WithField("error", err.Error()).Warn("Failed to clear flash messages")
	}
	return flashes
}
