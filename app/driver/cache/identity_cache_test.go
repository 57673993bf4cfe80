package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteer-hub/app/domain"
)

func cacheIdentity(t *testing.T) *domain.Identity {
	t.Helper()
	identity, err := domain.NewIdentity(7, "vol@example.org", "Test Volunteer", domain.RoleVolunteer)
	require.NoError(t, err)
	return identity
}

func TestIdentityCache_SetGet(t *testing.T) {
	c := NewIdentityCache(time.Minute)
	identity := cacheIdentity(t)

	_, ok := c.Get("token-1")
	assert.False(t, ok, "empty cache misses")

	c.Set("token-1", identity)

	got, ok := c.Get("token-1")
	require.True(t, ok)
	assert.Same(t, identity, got)
}

func TestIdentityCache_Remove(t *testing.T) {
	c := NewIdentityCache(time.Minute)
	c.Set("token-1", cacheIdentity(t))

	c.Remove("token-1")

	_, ok := c.Get("token-1")
	assert.False(t, ok)

	// Removing twice is harmless.
	c.Remove("token-1")
}

func TestIdentityCache_EntriesExpire(t *testing.T) {
	c := NewIdentityCache(50 * time.Millisecond)
	c.Set("token-1", cacheIdentity(t))

	_, ok := c.Get("token-1")
	require.True(t, ok)

	time.Sleep(120 * time.Millisecond)

	_, ok = c.Get("token-1")
	assert.False(t, ok, "entries past ttl must miss and fall back to the durable store")
}

func TestIdentityCache_OverwriteReplacesIdentity(t *testing.T) {
	c := NewIdentityCache(time.Minute)
	c.Set("token-1", cacheIdentity(t))

	replacement, err := domain.NewIdentity(9, "admin@shelter.org", "Shelter Admin", domain.RoleOrganizationAdmin)
	require.NoError(t, err)
	c.Set("token-1", replacement)

	got, ok := c.Get("token-1")
	require.True(t, ok)
	assert.Equal(t, domain.RoleOrganizationAdmin, got.Role)
}
