package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"volunteer-hub/app/domain"
	"volunteer-hub/app/port"
	"volunteer-hub/app/utils/logger"
)

// SessionRepository implements port.SessionRepository for PostgreSQL. The
// sessions table is the durable storage behind the session store: one row per
// token, identity serialized as JSONB.
type SessionRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db DatabaseIface, logger *slog.Logger) port.SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger.With("component", "session_repository"),
	}
}

// Create persists a session. The identity is serialized whole so a restore
// after restart reproduces exactly what was written.
func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	identityJSON, err := json.Marshal(session.Identity)
	if err != nil {
		return fmt.Errorf("failed to serialize identity: %w", err)
	}

	query := `
		INSERT INTO sessions (token, identity, created_at, expires_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (token) DO UPDATE
		SET identity = EXCLUDED.identity,
		    created_at = EXCLUDED.created_at,
		    expires_at = EXCLUDED.expires_at,
		    last_seen_at = EXCLUDED.last_seen_at`

	_, err = r.db.Exec(ctx, query,
		session.Token,
		identityJSON,
		session.CreatedAt,
		session.ExpiresAt,
		session.LastSeenAt,
	)
	if err != nil {
		r.logger.Error("failed to store session", "session", logger.TokenPrefix(session.Token), "error", err)
		return fmt.Errorf("failed to store session: %w", err)
	}

	r.logger.Info("session stored", "session", logger.TokenPrefix(session.Token), "user_id", session.Identity.ID)
	return nil
}

// Get loads a session by token. A missing row, an expired session, or a
// malformed identity record all come back as domain.ErrSessionNotFound:
// corrupt durable state means "no session", never a propagated parse error.
func (r *SessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	query := `
		SELECT token, identity, created_at, expires_at, last_seen_at
		FROM sessions
		WHERE token = $1`

	session := &domain.Session{}
	var identityJSON []byte

	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&identityJSON,
		&session.CreatedAt,
		&session.ExpiresAt,
		&session.LastSeenAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		r.logger.Error("failed to load session", "session", logger.TokenPrefix(token), "error", err)
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(identityJSON, &identity); err != nil {
		r.logger.Warn("malformed identity record, treating as no session",
			"session", logger.TokenPrefix(token), "error", err)
		return nil, domain.ErrSessionNotFound
	}
	if err := identity.Validate(); err != nil {
		r.logger.Warn("invalid identity record, treating as no session",
			"session", logger.TokenPrefix(token), "error", err)
		return nil, domain.ErrSessionNotFound
	}
	session.Identity = &identity

	if session.IsExpired() {
		return nil, domain.ErrSessionNotFound
	}

	return session, nil
}

// Touch updates a session's last-seen timestamp. An expired row is skipped
// the same as a missing one, so a cached identity whose row has run out is
// evicted on its next validation instead of surviving until the sweep.
func (r *SessionRepository) Touch(ctx context.Context, token string, lastSeen time.Time) error {
	query := `UPDATE sessions SET last_seen_at = $2 WHERE token = $1 AND expires_at > NOW()`

	tag, err := r.db.Exec(ctx, query, token, lastSeen)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Delete removes a session row. Deleting an absent session is not an error;
// logout is idempotent.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`

	if _, err := r.db.Exec(ctx, query, token); err != nil {
		r.logger.Error("failed to delete session", "session", logger.TokenPrefix(token), "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	r.logger.Info("session deleted", "session", logger.TokenPrefix(token))
	return nil
}

// DeleteExpired removes all expired session rows and reports how many went.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < NOW()`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	if n := tag.RowsAffected(); n > 0 {
		r.logger.Info("expired sessions removed", "count", n)
		return n, nil
	}
	return 0, nil
}
