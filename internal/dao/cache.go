package dao

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a listing serves form choices.
const DefaultCacheTTL = 30 * time.Second

type listing struct {
	objects []Object
	expires time.Time
}

// ListingCache keeps the last listing of each resource so forms can offer
// category and product choices without refetching.
type ListingCache struct {
	entries map[ResourceID]listing
	ttl     time.Duration
	now     func() time.Time
	mx      sync.RWMutex
}

// NewListingCache returns a cache whose entries expire after ttl.
func NewListingCache(ttl time.Duration) *ListingCache {
	return &ListingCache{
		entries: make(map[ResourceID]listing),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Lookup returns the listing of rid while it is fresh.
func (c *ListingCache) Lookup(rid ResourceID) ([]Object, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	l, ok := c.entries[rid]
	if !ok || c.now().After(l.expires) {
		return nil, false
	}

	return l.objects, true
}

// Store records a fresh listing of rid.
func (c *ListingCache) Store(rid ResourceID, oo []Object) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.entries[rid] = listing{objects: oo, expires: c.now().Add(c.ttl)}
}

// Forget drops the listings of the given resources.
func (c *ListingCache) Forget(rids ...ResourceID) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for _, rid := range rids {
		delete(c.entries, rid)
	}
}

// ForgetGroup drops every listing of a group, e.g. all analytics reports.
func (c *ListingCache) ForgetGroup(group string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for rid := range c.entries {
		if rid.Group == group {
			delete(c.entries, rid)
		}
	}
}
