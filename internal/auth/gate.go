// Package auth provides the password gate and session registry for the
// Habitgrid web UI. The secret comes from the environment; access to the
// habit store is blocked until a session has presented it.
package auth

import (
	"crypto/subtle"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/manav03panchal/habitgrid/internal/errors"
)

// PasswordEnv is the environment variable holding the shared secret.
const PasswordEnv = "HABITGRID_PASSWORD"

// DefaultSessionTTL is how long an idle session stays valid.
const DefaultSessionTTL = 12 * time.Hour

// Gate checks user-entered passwords against the configured secret.
type Gate struct {
	secret []byte
}

// NewGate creates a gate for the given secret.
// An empty secret is a configuration error: the gate fails closed.
func NewGate(secret string) (*Gate, error) {
	if secret == "" {
		return nil, errors.ErrSecretMissing
	}
	return &Gate{secret: []byte(secret)}, nil
}

// NewGateFromEnv creates a gate from the PasswordEnv environment variable.
func NewGateFromEnv() (*Gate, error) {
	return NewGate(os.Getenv(PasswordEnv))
}

// Check reports whether the password matches the secret.
// The comparison is constant-time.
func (g *Gate) Check(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), g.secret) == 1
}

// Session is the explicit per-session state: an opaque token, whether the
// gate has been passed, and whether the last login attempt failed.
type Session struct {
	Token         string
	Authenticated bool
	LoginFailed   bool
	CreatedAt     time.Time
	LastSeen      time.Time
}

// Sessions is an in-memory session registry keyed by token.
type Sessions struct {
	mu   sync.Mutex
	byID map[string]*Session
	ttl  time.Duration
	now  func() time.Time
}

// NewSessions creates a session registry with the default TTL.
func NewSessions() *Sessions {
	return &Sessions{
		byID: make(map[string]*Session),
		ttl:  DefaultSessionTTL,
		now:  time.Now,
	}
}

// Begin creates a new unauthenticated session.
func (s *Sessions) Begin() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		Token:     uuid.New().String(),
		CreatedAt: now,
		LastSeen:  now,
	}
	s.byID[sess.Token] = sess
	return sess
}

// Get returns the session for a token, if it exists and has not expired.
func (s *Sessions) Get(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[token]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(sess.LastSeen) > s.ttl {
		delete(s.byID, token)
		return nil, false
	}
	sess.LastSeen = now
	return sess, true
}

// Login checks the password against the gate and records the outcome on
// the session. The entered password is not retained either way.
func (s *Sessions) Login(sess *Session, gate *Gate, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gate.Check(password) {
		sess.Authenticated = true
		sess.LoginFailed = false
		return true
	}
	sess.Authenticated = false
	sess.LoginFailed = true
	return false
}

// Revoke removes a session.
func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, token)
}
