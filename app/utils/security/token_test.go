package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteer-hub/app/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testConfig() TokenConfig {
	return TokenConfig{
		Secret:   testSecret,
		Issuer:   "volunteer-hub",
		Audience: "volunteer-hub-web",
	}
}

func testSession(t *testing.T, role domain.Role, ttl time.Duration) *domain.Session {
	t.Helper()
	identity, err := domain.NewIdentity(7, "vol@example.org", "Test Volunteer", role)
	require.NoError(t, err)
	session, err := domain.NewSession(identity, ttl)
	require.NoError(t, err)
	return session
}

func TestNewTokenIssuer(t *testing.T) {
	t.Run("accepts a strong secret", func(t *testing.T) {
		issuer, err := NewTokenIssuer(testConfig())
		require.NoError(t, err)
		assert.NotNil(t, issuer)
	})

	t.Run("rejects a short secret", func(t *testing.T) {
		_, err := NewTokenIssuer(TokenConfig{Secret: "short", Issuer: "x", Audience: "y"})
		assert.ErrorIs(t, err, domain.ErrSecretTooWeak)
	})
}

func TestTokenIssuer_IssueVerify(t *testing.T) {
	issuer, err := NewTokenIssuer(testConfig())
	require.NoError(t, err)

	session := testSession(t, domain.RoleOrganizationAdmin, time.Hour)

	signed, err := issuer.Issue(session)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(signed, ".")), "expected a compact JWS")

	sid, role, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, session.Token, sid)
	assert.Equal(t, domain.RoleOrganizationAdmin, role)
}

func TestTokenIssuer_IssueRejectsExpiredSession(t *testing.T) {
	issuer, err := NewTokenIssuer(testConfig())
	require.NoError(t, err)

	session := testSession(t, domain.RoleVolunteer, time.Hour)
	session.ExpiresAt = time.Now().Add(-time.Minute)

	_, err = issuer.Issue(session)
	assert.ErrorIs(t, err, domain.ErrTokenGeneration)
}

func TestTokenIssuer_Verify(t *testing.T) {
	issuer, err := NewTokenIssuer(testConfig())
	require.NoError(t, err)
	session := testSession(t, domain.RoleVolunteer, time.Hour)

	t.Run("rejects garbage", func(t *testing.T) {
		_, _, err := issuer.Verify("not-a-token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other, err := NewTokenIssuer(TokenConfig{
			Secret:   "ffffffffffffffffffffffffffffffff",
			Issuer:   "volunteer-hub",
			Audience: "volunteer-hub-web",
		})
		require.NoError(t, err)

		signed, err := other.Issue(session)
		require.NoError(t, err)

		_, _, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects a tampered payload", func(t *testing.T) {
		signed, err := issuer.Issue(session)
		require.NoError(t, err)

		parts := strings.Split(signed, ".")
		parts[1] = parts[1][:len(parts[1])-2] + "xx"

		_, _, err = issuer.Verify(strings.Join(parts, "."))
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects a token for another audience", func(t *testing.T) {
		other, err := NewTokenIssuer(TokenConfig{
			Secret:   testSecret,
			Issuer:   "volunteer-hub",
			Audience: "some-other-service",
		})
		require.NoError(t, err)

		signed, err := other.Issue(session)
		require.NoError(t, err)

		_, _, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		shortLived := testSession(t, domain.RoleVolunteer, time.Hour)
		shortLived.ExpiresAt = time.Now().Add(50 * time.Millisecond)

		signed, err := issuer.Issue(shortLived)
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)

		_, _, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
