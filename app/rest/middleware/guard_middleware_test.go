package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"volunteer-hub/app/domain"
	"volunteer-hub/app/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func guardIdentity(t *testing.T, role domain.Role) *domain.Identity {
	t.Helper()
	identity, err := domain.NewIdentity(42, "jordan@example.com", "Jordan Reyes", role)
	require.NoError(t, err)
	return identity
}

type guardFixture struct {
	guard    *GuardMiddleware
	sessions *mocks.MockSessionUsecase
	tokens   *mocks.MockTokenIssuer
}

func newGuardFixture(t *testing.T) *guardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sessions := mocks.NewMockSessionUsecase(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	return &guardFixture{
		guard:    NewGuardMiddleware(sessions, tokens, testLogger()),
		sessions: sessions,
		tokens:   tokens,
	}
}

func runGuard(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	handler := mw(func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return rec, handlerCalled
}

func TestRequireAuth_NoSessionRedirectsToLogin(t *testing.T) {
	f := newGuardFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec, called := runGuard(f.guard.RequireAuth(), req)

	assert.False(t, called, "protected handler must not run")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?return_to=%2Fv1%2Fdashboard", rec.Header().Get("Location"))
}

func TestRequireAuth_PreservesQueryInReturnTo(t *testing.T) {
	f := newGuardFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/opportunities?category=env", nil)
	rec, called := runGuard(f.guard.RequireAuth(), req)

	assert.False(t, called)
	assert.Equal(t, "/login?return_to=%2Fv1%2Fopportunities%3Fcategory%3Denv", rec.Header().Get("Location"))
}

func TestRequireAuth_ValidSessionRunsHandler(t *testing.T) {
	f := newGuardFixture(t)
	identity := guardIdentity(t, domain.RoleVolunteer)

	f.tokens.EXPECT().Verify("signed-jwt").Return("sid-1", domain.RoleVolunteer, nil)
	f.sessions.EXPECT().Validate(gomock.Any(), "sid-1").Return(identity, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "signed-jwt"})
	rec, called := runGuard(f.guard.RequireAuth(), req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_BearerTokenAccepted(t *testing.T) {
	f := newGuardFixture(t)
	identity := guardIdentity(t, domain.RoleVolunteer)

	f.tokens.EXPECT().Verify("signed-jwt").Return("sid-1", domain.RoleVolunteer, nil)
	f.sessions.EXPECT().Validate(gomock.Any(), "sid-1").Return(identity, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer signed-jwt")
	_, called := runGuard(f.guard.RequireAuth(), req)

	assert.True(t, called)
}

func TestRequireAuth_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	f := newGuardFixture(t)

	f.tokens.EXPECT().Verify("forged").Return("", domain.Role(""), domain.ErrTokenInvalid)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	rec, called := runGuard(f.guard.RequireAuth(), req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRequireAuth_JSONClientGets401(t *testing.T) {
	f := newGuardFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Accept", "application/json")
	rec, called := runGuard(f.guard.RequireAuth(), req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestRequireAuth_RestoringAnswersPending(t *testing.T) {
	f := newGuardFixture(t)
	f.guard.SetRestoring(true)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec, called := runGuard(f.guard.RequireAuth(), req)

	assert.False(t, called)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Empty(t, rec.Header().Get("Location"), "pending must never redirect")
}

func TestRequireRole_WrongRoleRedirectsToUnauthorized(t *testing.T) {
	f := newGuardFixture(t)
	volunteer := guardIdentity(t, domain.RoleVolunteer)

	f.tokens.EXPECT().Verify("signed-jwt").Return("sid-1", domain.RoleVolunteer, nil)
	f.sessions.EXPECT().Validate(gomock.Any(), "sid-1").Return(volunteer, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "signed-jwt"})
	rec, called := runGuard(f.guard.RequireRole(domain.RoleOrganizationAdmin), req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	// Authenticated but wrong role lands on /unauthorized, never back at login.
	assert.Equal(t, domain.UnauthorizedPath, rec.Header().Get("Location"))
}

func TestRequireRole_AnonymousGoesToLoginNotUnauthorized(t *testing.T) {
	f := newGuardFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	rec, called := runGuard(f.guard.RequireRole(domain.RoleOrganizationAdmin), req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?return_to=%2Fv1%2Fprojects", rec.Header().Get("Location"))
}

func TestRequireRole_MatchingRoleRunsHandler(t *testing.T) {
	f := newGuardFixture(t)
	org := guardIdentity(t, domain.RoleOrganizationAdmin)

	f.tokens.EXPECT().Verify("signed-jwt").Return("sid-2", domain.RoleOrganizationAdmin, nil)
	f.sessions.EXPECT().Validate(gomock.Any(), "sid-2").Return(org, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "signed-jwt"})
	_, called := runGuard(f.guard.RequireRole(domain.RoleOrganizationAdmin), req)

	assert.True(t, called)
}

func TestRequireRole_JSONClientGets403(t *testing.T) {
	f := newGuardFixture(t)
	volunteer := guardIdentity(t, domain.RoleVolunteer)

	f.tokens.EXPECT().Verify("signed-jwt").Return("sid-1", domain.RoleVolunteer, nil)
	f.sessions.EXPECT().Validate(gomock.Any(), "sid-1").Return(volunteer, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "signed-jwt"})
	rec, called := runGuard(f.guard.RequireRole(domain.RoleOrganizationAdmin), req)

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
