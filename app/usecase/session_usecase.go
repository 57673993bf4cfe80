package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"volunteer-hub/app/domain"
	"volunteer-hub/app/port"
	"volunteer-hub/app/utils/logger"
	"volunteer-hub/app/utils/metrics"
)

// SessionUsecase implements the session store and its operations. It is the
// only component that mutates session truth; guards and handlers read through
// Restore and Validate.
type SessionUsecase struct {
	repo    port.SessionRepository
	cache   port.IdentityCache
	gateway port.HubGateway
	ttl     time.Duration
	logger  *slog.Logger
}

// NewSessionUsecase creates a new SessionUsecase instance
func NewSessionUsecase(repo port.SessionRepository, cache port.IdentityCache, gateway port.HubGateway, ttl time.Duration, log *slog.Logger) *SessionUsecase {
	return &SessionUsecase{
		repo:    repo,
		cache:   cache,
		gateway: gateway,
		ttl:     ttl,
		logger:  log.With("component", "session_usecase"),
	}
}

// Restore loads the session for a presented token from durable storage only.
// No upstream call is made, and the operation is idempotent: restoring twice
// yields the same result. Missing, expired, and malformed records are all
// domain.ErrSessionNotFound.
func (uc *SessionUsecase) Restore(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := uc.repo.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(session.Token, session.Identity)
	return session, nil
}

// Login authenticates against the role-specific upstream endpoint. On success
// the new session is written to durable storage strictly before the call
// returns, so any guard consulting the store afterwards sees the identity.
// On failure nothing is written: identity is never partial.
func (uc *SessionUsecase) Login(ctx context.Context, email, password string, role domain.Role) (*domain.Session, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}

	identity, err := uc.gateway.Login(ctx, email, password, role)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(string(role), metrics.OutcomeError).Inc()
		return nil, err
	}

	session, err := domain.NewSession(identity, uc.ttl)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(string(role), metrics.OutcomeError).Inc()
		return nil, err
	}

	// Durable write happens-before the operation resolves.
	if err := uc.repo.Create(ctx, session); err != nil {
		metrics.LoginAttempts.WithLabelValues(string(role), metrics.OutcomeError).Inc()
		return nil, err
	}
	uc.cache.Set(session.Token, session.Identity)

	metrics.LoginAttempts.WithLabelValues(string(role), metrics.OutcomeOK).Inc()
	uc.logger.Info("login succeeded",
		"user_id", identity.ID,
		"role", identity.Role,
		"session", logger.TokenPrefix(session.Token))
	return session, nil
}

// RegisterVolunteer creates a volunteer account upstream and, on success,
// chains into Login with the same credentials to establish a session.
func (uc *SessionUsecase) RegisterVolunteer(ctx context.Context, reg domain.VolunteerRegistration) (*domain.Session, error) {
	if err := uc.gateway.RegisterVolunteer(ctx, reg); err != nil {
		metrics.Registrations.WithLabelValues(string(domain.RoleVolunteer), metrics.OutcomeError).Inc()
		return nil, err
	}
	metrics.Registrations.WithLabelValues(string(domain.RoleVolunteer), metrics.OutcomeOK).Inc()

	uc.logger.Info("volunteer registered, establishing session", "email", reg.Email)
	return uc.Login(ctx, reg.Email, reg.Password, domain.RoleVolunteer)
}

// RegisterOrganization is the organization counterpart of RegisterVolunteer.
func (uc *SessionUsecase) RegisterOrganization(ctx context.Context, reg domain.OrganizationRegistration) (*domain.Session, error) {
	if err := uc.gateway.RegisterOrganization(ctx, reg); err != nil {
		metrics.Registrations.WithLabelValues(string(domain.RoleOrganizationAdmin), metrics.OutcomeError).Inc()
		return nil, err
	}
	metrics.Registrations.WithLabelValues(string(domain.RoleOrganizationAdmin), metrics.OutcomeOK).Inc()

	uc.logger.Info("organization registered, establishing session", "email", reg.Email)
	return uc.Login(ctx, reg.Email, reg.Password, domain.RoleOrganizationAdmin)
}

// Logout clears durable storage and the cache. Idempotent; logging out an
// already-absent session succeeds.
func (uc *SessionUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := uc.repo.Delete(ctx, token); err != nil {
		return err
	}
	uc.cache.Remove(token)

	uc.logger.Info("logged out", "session", logger.TokenPrefix(token))
	return nil
}

// Validate resolves a token to its identity, cache-first. The durable store
// stays authoritative for liveness: a cache hit whose row has been deleted
// (logout elsewhere) is evicted and reported as no session.
func (uc *SessionUsecase) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	if identity, found := uc.cache.Get(token); found {
		if err := uc.repo.Touch(ctx, token, time.Now()); err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				uc.cache.Remove(token)
				return nil, domain.ErrSessionNotFound
			}
			return nil, err
		}
		return identity, nil
	}

	session, err := uc.repo.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	session.Touch()
	if err := uc.repo.Touch(ctx, token, session.LastSeenAt); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		uc.logger.Warn("failed to refresh session activity", "session", logger.TokenPrefix(token), "error", err)
	}

	uc.cache.Set(token, session.Identity)
	return session.Identity, nil
}

// CleanupExpired removes expired sessions from durable storage. Run
// periodically by the server.
func (uc *SessionUsecase) CleanupExpired(ctx context.Context) error {
	_, err := uc.repo.DeleteExpired(ctx)
	return err
}
