package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"volunteer-hub/app/domain"
	"volunteer-hub/app/port"
	"volunteer-hub/app/rest/middleware"
	apperrors "volunteer-hub/app/utils/errors"
	"volunteer-hub/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	sessions  port.SessionUsecase
	tokens    port.TokenIssuer
	validator *validator.Validator
	logger    *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions port.SessionUsecase, tokens port.TokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions:  sessions,
		tokens:    tokens,
		validator: validator.New(),
		logger:    logger,
	}
}

// LoginRequest carries the credentials plus the role selecting which upstream
// endpoint handles them. The role never flows into the issued session; that
// comes from the login response.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,user_role"`
}

// SessionResponse is the authenticated session as handlers report it.
type SessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Identity      *domain.Identity `json:"identity,omitempty"`
	ExpiresAt     string           `json:"expires_at,omitempty"`
	ReturnTo      string           `json:"return_to,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type DetailedErrorResponse struct {
	Error   string              `json:"error"`
	Code    apperrors.ErrorCode `json:"code"`
	Details interface{}         `json:"details,omitempty"`
}

// errorJSON renders a coded error body with the code's canonical status.
func errorJSON(c echo.Context, code apperrors.ErrorCode, message string, details interface{}) error {
	return c.JSON(code.HTTPStatus(), DetailedErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// Login authenticates credentials against the platform and establishes a
// session
// @Summary Log in
// @Description Authenticate as a volunteer or an organization and receive a session cookie
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} DetailedErrorResponse
// @Failure 401 {object} DetailedErrorResponse
// @Failure 503 {object} DetailedErrorResponse
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind login request", "error", err)
		return errorJSON(c, apperrors.CodeInvalidRequest, "Invalid request format", "Request body could not be parsed as JSON")
	}

	if err := h.validator.Validate(&req); err != nil {
		return h.validationFailed(c, err)
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return errorJSON(c, apperrors.CodeInvalidRole, "Invalid role", nil)
	}

	session, err := h.sessions.Login(ctx, req.Email, req.Password, role)
	if err != nil {
		h.logger.Error("login failed", "email", req.Email, "role", role, "error", err)
		return h.handleAuthError(c, err)
	}

	if err := h.issueCookie(c, session); err != nil {
		return h.handleAuthError(c, err)
	}

	h.logger.Info("login completed", "user_id", session.Identity.ID, "role", session.Identity.Role)
	return c.JSON(http.StatusOK, sessionBody(c, session))
}

// RegisterVolunteer registers a volunteer account and logs it in
// @Summary Register a volunteer
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body domain.VolunteerRegistration true "Volunteer profile"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} DetailedErrorResponse
// @Failure 409 {object} DetailedErrorResponse
// @Router /v1/auth/register/volunteer [post]
func (h *AuthHandler) RegisterVolunteer(c echo.Context) error {
	ctx := c.Request().Context()

	var reg domain.VolunteerRegistration
	if err := c.Bind(&reg); err != nil {
		return errorJSON(c, apperrors.CodeInvalidRequest, "Invalid request format", nil)
	}
	if err := h.validator.Validate(&reg); err != nil {
		return h.validationFailed(c, err)
	}

	session, err := h.sessions.RegisterVolunteer(ctx, reg)
	if err != nil {
		h.logger.Error("volunteer registration failed", "email", reg.Email, "error", err)
		return h.handleAuthError(c, err)
	}

	if err := h.issueCookie(c, session); err != nil {
		return h.handleAuthError(c, err)
	}
	return c.JSON(http.StatusCreated, sessionBody(c, session))
}

// RegisterOrganization registers an organization account and logs it in
// @Summary Register an organization
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body domain.OrganizationRegistration true "Organization profile"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} DetailedErrorResponse
// @Failure 409 {object} DetailedErrorResponse
// @Router /v1/auth/register/organization [post]
func (h *AuthHandler) RegisterOrganization(c echo.Context) error {
	ctx := c.Request().Context()

	var reg domain.OrganizationRegistration
	if err := c.Bind(&reg); err != nil {
		return errorJSON(c, apperrors.CodeInvalidRequest, "Invalid request format", nil)
	}
	if err := h.validator.Validate(&reg); err != nil {
		return h.validationFailed(c, err)
	}

	session, err := h.sessions.RegisterOrganization(ctx, reg)
	if err != nil {
		h.logger.Error("organization registration failed", "email", reg.Email, "error", err)
		return h.handleAuthError(c, err)
	}

	if err := h.issueCookie(c, session); err != nil {
		return h.handleAuthError(c, err)
	}
	return c.JSON(http.StatusCreated, sessionBody(c, session))
}

// Logout ends the session and lands on the public entry route
// @Summary Log out
// @Tags authentication
// @Produce json
// @Success 303 "Redirect to /"
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	token, _ := c.Get(middleware.ContextSessionTokenKey).(string)
	if err := h.sessions.Logout(ctx, token); err != nil {
		h.logger.Error("logout failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "logout failed"})
	}

	h.clearCookie(c)

	if prefersJSON(c) {
		return c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
	}
	return c.Redirect(http.StatusSeeOther, domain.LandingPath)
}

// Session reports the caller's restored session
// @Summary Current session
// @Tags authentication
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	identity, _ := c.Get(middleware.ContextIdentityKey).(*domain.Identity)
	resp := SessionResponse{
		Authenticated: identity != nil,
		Identity:      identity,
	}

	// Restore reads the durable record, so the report carries the expiry
	// the guard's identity lookup does not.
	session, err := h.sessions.Restore(c.Request().Context(), sessionToken(c))
	switch {
	case err == nil:
		resp.Identity = session.Identity
		resp.ExpiresAt = session.ExpiresAt.Format(time.RFC3339)
	case errors.Is(err, domain.ErrSessionNotFound):
		resp = SessionResponse{Authenticated: false}
	default:
		h.logger.Warn("session report fell back to the guard identity", "error", err)
	}

	return c.JSON(http.StatusOK, resp)
}

// LoginPage is the public login view target guards redirect to.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"view":      "login",
		"return_to": c.QueryParam("return_to"),
	})
}

// UnauthorizedPage is where authenticated-but-wrong-role navigation lands.
func (h *AuthHandler) UnauthorizedPage(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{
		"view":  "unauthorized",
		"error": "you do not have access to the requested page",
	})
}

// issueCookie signs the session token and sets it as the session cookie.
func (h *AuthHandler) issueCookie(c echo.Context, session *domain.Session) error {
	signed, err := h.tokens.Issue(session)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err)
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(session.Remaining().Seconds()),
	})
	return nil
}

func (h *AuthHandler) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (h *AuthHandler) validationFailed(c echo.Context, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return errorJSON(c, apperrors.CodeValidationError, "Validation failed", verr.Errors)
	}
	return errorJSON(c, apperrors.CodeValidationError, "Validation failed", err.Error())
}

// handleAuthError maps domain sentinels onto HTTP responses.
func (h *AuthHandler) handleAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return errorJSON(c, apperrors.CodeInvalidCredentials, "Invalid credentials",
			"The provided email or password is incorrect.")
	case errors.Is(err, domain.ErrEmailTaken):
		return errorJSON(c, apperrors.CodeEmailTaken, "Email already registered",
			"An account with this email address already exists. Log in instead.")
	case errors.Is(err, domain.ErrInvalidRole):
		return errorJSON(c, apperrors.CodeInvalidRole, "Invalid role", nil)
	case errors.Is(err, domain.ErrRegistrationFailed):
		return errorJSON(c, apperrors.CodeRegistrationFailed, "Registration failed",
			"The platform rejected the registration.")
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return errorJSON(c, apperrors.CodeUpstreamError, "Service temporarily unavailable",
			"The volunteer platform is temporarily unreachable. Please try again later.")
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
		return errorJSON(c, apperrors.CodeSessionNotFound, "Session expired", nil)
	default:
		h.logger.Error("unhandled auth error", "error", err)
		return errorJSON(c, apperrors.CodeInternalError, "internal error", nil)
	}
}

func sessionBody(c echo.Context, session *domain.Session) SessionResponse {
	return SessionResponse{
		Authenticated: true,
		Identity:      session.Identity,
		ExpiresAt:     session.ExpiresAt.UTC().Format(time.RFC3339),
		ReturnTo:      c.QueryParam("return_to"),
	}
}

func prefersJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get("Accept"), echo.MIMEApplicationJSON)
}
