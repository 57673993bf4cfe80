package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedStatus(t *testing.T, handler echo.HandlerFunc, method, target string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec.Code
}

func TestRateLimiter_LoginBucketStaysStrict(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.RateLimit()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Browsing first must not hand the same address a relaxed bucket for
	// the credential path.
	for i := 0; i < 10; i++ {
		code := rateLimitedStatus(t, handler, http.MethodGet, "/v1/opportunities")
		require.Equal(t, http.StatusOK, code)
	}

	allowed := 0
	denied := 0
	for i := 0; i < 10; i++ {
		code := rateLimitedStatus(t, handler, http.MethodPost, "/v1/auth/login")
		switch code {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
			denied++
		}
	}

	assert.LessOrEqual(t, allowed, 6)
	assert.GreaterOrEqual(t, denied, 4)
}

func TestRateLimiter_GeneralTrafficUnaffectedByLoginBucket(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.RateLimit()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		rateLimitedStatus(t, handler, http.MethodPost, "/v1/auth/login")
	}

	code := rateLimitedStatus(t, handler, http.MethodGet, "/v1/dashboard")
	assert.Equal(t, http.StatusOK, code)
}
