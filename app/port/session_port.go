package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go -package=mocks

import (
	"context"
	"time"

	"volunteer-hub/app/domain"
)

// SessionUsecase is the single owner of "who is logged in". All session
// mutation goes through these operations; guards and handlers only read.
type SessionUsecase interface {
	// Restore loads the session for a presented token from durable storage.
	// No upstream call is made. A missing, expired, or malformed record
	// yields domain.ErrSessionNotFound. Idempotent.
	Restore(ctx context.Context, token string) (*domain.Session, error)

	// Login authenticates against the role-specific upstream endpoint and,
	// on success, persists the new session durably before returning.
	Login(ctx context.Context, email, password string, role domain.Role) (*domain.Session, error)

	// RegisterVolunteer creates a volunteer account upstream and chains into
	// Login with the same credentials. On failure no session is created.
	RegisterVolunteer(ctx context.Context, reg domain.VolunteerRegistration) (*domain.Session, error)

	// RegisterOrganization is the organization counterpart of RegisterVolunteer.
	RegisterOrganization(ctx context.Context, reg domain.OrganizationRegistration) (*domain.Session, error)

	// Logout deletes the durable record and cache entry. No upstream call.
	Logout(ctx context.Context, token string) error

	// Validate resolves a token to its identity, cache-first, refreshing the
	// session's last-seen timestamp.
	Validate(ctx context.Context, token string) (*domain.Identity, error)
}

// SessionRepository is the durable session store.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Touch(ctx context.Context, token string, lastSeen time.Time) error
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// IdentityCache fronts the repository with an in-memory identity lookup.
type IdentityCache interface {
	Get(token string) (*domain.Identity, bool)
	Set(token string, identity *domain.Identity)
	Remove(token string)
}

// TokenIssuer signs and verifies the session cookie value. The role claim is
// server-issued; the client never supplies it.
type TokenIssuer interface {
	Issue(session *domain.Session) (string, error)
	Verify(signed string) (sid string, role domain.Role, err error)
}
