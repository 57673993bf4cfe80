package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"volunteer-hub/app/domain"
	"volunteer-hub/app/port"
	"volunteer-hub/app/utils/metrics"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "vh_session"

// Context keys set by the guards for downstream handlers.
const (
	ContextIdentityKey     = "identity"
	ContextSessionTokenKey = "session_token"
)

// GuardMiddleware turns the pure guard decisions into HTTP behavior. Browser
// requests get 303 redirects; requests preferring JSON get 401/403 bodies.
// The decision itself is identical either way.
type GuardMiddleware struct {
	sessions  port.SessionUsecase
	tokens    port.TokenIssuer
	logger    *slog.Logger
	restoring atomic.Bool
}

// NewGuardMiddleware creates a new guard middleware
func NewGuardMiddleware(sessions port.SessionUsecase, tokens port.TokenIssuer, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// SetRestoring flips the restoring gate. While set, guards answer Pending
// (503 + Retry-After) instead of deciding, so a warming server never bounces
// a logged-in user to the login view.
func (m *GuardMiddleware) SetRestoring(restoring bool) {
	m.restoring.Store(restoring)
}

// RequireAuth admits any authenticated identity.
func (m *GuardMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, token := m.resolveState(c)
			decision := domain.DecideAuth(state, requestedLocation(c))
			metrics.GuardDecisions.WithLabelValues("auth", decisionLabel(decision)).Inc()
			return m.apply(c, next, decision, state, token)
		}
	}
}

// RequireRole admits only identities holding one of the allowed roles. The
// auth check runs first, so an anonymous request is sent to login, never to
// the unauthorized view.
func (m *GuardMiddleware) RequireRole(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, token := m.resolveState(c)
			decision := domain.DecideRole(state, requestedLocation(c), allowed...)
			metrics.GuardDecisions.WithLabelValues("role", decisionLabel(decision)).Inc()
			return m.apply(c, next, decision, state, token)
		}
	}
}

// resolveState builds the guard's view of the session store from the request
// credentials. An invalid or unverifiable token is simply an anonymous state;
// the guard decides what that means for the route.
func (m *GuardMiddleware) resolveState(c echo.Context) (domain.GuardState, string) {
	if m.restoring.Load() {
		return domain.GuardState{Restoring: true}, ""
	}

	signed := extractToken(c)
	if signed == "" {
		return domain.GuardState{}, ""
	}

	sid, _, err := m.tokens.Verify(signed)
	if err != nil {
		m.logger.Debug("session token rejected", "error", err)
		return domain.GuardState{}, ""
	}

	identity, err := m.sessions.Validate(c.Request().Context(), sid)
	if err != nil {
		m.logger.Debug("session validation failed", "error", err)
		return domain.GuardState{}, ""
	}

	return domain.GuardState{Identity: identity}, sid
}

func (m *GuardMiddleware) apply(c echo.Context, next echo.HandlerFunc, decision domain.Decision, state domain.GuardState, token string) error {
	switch decision.Kind {
	case domain.DecisionAuthorized:
		c.Set(ContextIdentityKey, state.Identity)
		c.Set(ContextSessionTokenKey, token)
		return next(c)

	case domain.DecisionPending:
		c.Response().Header().Set("Retry-After", "1")
		if prefersJSON(c) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "restoring",
			})
		}
		return c.NoContent(http.StatusServiceUnavailable)

	default:
		if prefersJSON(c) {
			status := http.StatusUnauthorized
			message := "authentication required"
			if decision.Location == domain.UnauthorizedPath {
				status = http.StatusForbidden
				message = "insufficient privileges"
			}
			return c.JSON(status, map[string]string{"error": message})
		}
		return c.Redirect(http.StatusSeeOther, redirectTarget(decision))
	}
}

// redirectTarget appends the preserved origin as return_to for the post-login
// bounce-back. Only login redirects carry it.
func redirectTarget(decision domain.Decision) string {
	if decision.ReturnTo == "" || decision.Location != domain.LoginPath {
		return decision.Location
	}
	return decision.Location + "?return_to=" + url.QueryEscape(decision.ReturnTo)
}

func requestedLocation(c echo.Context) string {
	req := c.Request()
	if req.URL.RawQuery != "" {
		return req.URL.Path + "?" + req.URL.RawQuery
	}
	return req.URL.Path
}

func decisionLabel(d domain.Decision) string {
	switch d.Kind {
	case domain.DecisionAuthorized:
		return "authorized"
	case domain.DecisionPending:
		return "pending"
	default:
		if d.Location == domain.UnauthorizedPath {
			return "redirect_unauthorized"
		}
		return "redirect_login"
	}
}

// prefersJSON reports whether the client asked for an API-flavored answer.
func prefersJSON(c echo.Context) bool {
	accept := c.Request().Header.Get("Accept")
	return strings.Contains(accept, echo.MIMEApplicationJSON)
}

// extractToken pulls the signed session token from the cookie for browser
// requests, or the Authorization header for API clients.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return auth
}
