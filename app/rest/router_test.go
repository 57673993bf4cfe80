package rest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"volunteer-hub/app/mocks"
	custommw "volunteer-hub/app/rest/middleware"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// The guard handed in through RouterConfig must be the one deciding requests:
// its restoring gate governs every guarded route, and opening it switches the
// same request from 503 to a real decision.
func TestNewRouter_UsesInjectedGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockSessionUsecase(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)

	guard := custommw.NewGuardMiddleware(sessions, tokens, testLogger())
	guard.SetRestoring(true)

	e := NewRouter(RouterConfig{
		Logger:           testLogger(),
		SessionUsecase:   sessions,
		DirectoryUsecase: mocks.NewMockDirectoryUsecase(ctrl),
		TokenIssuer:      tokens,
		Guard:            guard,
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	guard.SetRestoring(false)

	req = httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	req.Header.Set("Accept", "application/json")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
