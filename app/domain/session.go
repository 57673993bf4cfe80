package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session binds an opaque token to an authenticated identity. At most one
// identity is active per session; a fresh login overwrites the prior one.
type Session struct {
	Token      string    `json:"token"`
	Identity   *Identity `json:"identity"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// NewSession creates a session for an identity with a freshly minted token.
func NewSession(identity *Identity, ttl time.Duration) (*Session, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %v", ttl)
	}

	now := time.Now()
	return &Session{
		Token:      uuid.NewString(),
		Identity:   identity,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
		LastSeenAt: now,
	}, nil
}

// IsExpired returns true if the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid returns true if the session carries a valid identity and has not expired.
func (s *Session) IsValid() bool {
	return s != nil && s.Identity.Validate() == nil && !s.IsExpired()
}

// Touch updates the last-seen timestamp.
func (s *Session) Touch() {
	s.LastSeenAt = time.Now()
}

// Remaining returns the time until expiry, zero if already expired.
func (s *Session) Remaining() time.Duration {
	if s.IsExpired() {
		return 0
	}
	return time.Until(s.ExpiresAt)
}
