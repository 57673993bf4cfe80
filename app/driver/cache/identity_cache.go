package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"volunteer-hub/app/domain"
)

// identityCacheSize bounds memory; evicted entries just fall back to the
// durable store.
const identityCacheSize = 4096

// IdentityCache is a TTL-bounded LRU fronting the durable session store.
// Implements port.IdentityCache.
type IdentityCache struct {
	lru *expirable.LRU[string, *domain.Identity]
}

// NewIdentityCache creates a cache whose entries expire after ttl.
func NewIdentityCache(ttl time.Duration) *IdentityCache {
	return &IdentityCache{
		lru: expirable.NewLRU[string, *domain.Identity](identityCacheSize, nil, ttl),
	}
}

// Get retrieves a cached identity by session token.
func (c *IdentityCache) Get(token string) (*domain.Identity, bool) {
	return c.lru.Get(token)
}

// Set stores an identity under its session token.
func (c *IdentityCache) Set(token string, identity *domain.Identity) {
	c.lru.Add(token, identity)
}

// Remove drops a token's entry, used on logout and forced invalidation.
func (c *IdentityCache) Remove(token string) {
	c.lru.Remove(token)
}
