package dao

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/stockr/stockr/internal/api"
)

// BaseObject implements the Object interface with embedded fields.
type BaseObject struct {
	ID   string
	Name string
	Raw  any
}

// GetID returns the record ID.
func (b *BaseObject) GetID() string {
	return b.ID
}

// GetName returns the record name.
func (b *BaseObject) GetName() string {
	return b.Name
}

// GetRaw returns the api record.
func (b *BaseObject) GetRaw() any {
	return b.Raw
}

// Resource is the base struct that all specific DAOs embed.
// It provides factory access, resource identification, and caching.
type Resource struct {
	Factory
	rid *ResourceID
	mx  sync.RWMutex
}

// Init initializes the Resource with factory and resource ID.
func (r *Resource) Init(f Factory, rid *ResourceID) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.Factory = f
	r.rid = rid
}

// ResourceID returns the resource identifier.
func (r *Resource) ResourceID() *ResourceID {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.rid
}

// getFactory returns the factory in a thread-safe manner.
func (r *Resource) getFactory() Factory {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.Factory
}

// key returns the resource ID used for caching.
func (r *Resource) key() ResourceID {
	r.mx.RLock()
	defer r.mx.RUnlock()
	if r.rid == nil {
		return ResourceID{}
	}
	return *r.rid
}

// remember stores a fresh listing in the shared cache.
func (r *Resource) remember(oo []Object) []Object {
	if c := r.getFactory().Cache(); c != nil {
		c.Store(r.key(), oo)
	}
	return oo
}

// cachedOr serves the listing from cache while it is fresh.
func (r *Resource) cachedOr(ctx context.Context, fetch func(context.Context) ([]Object, error)) ([]Object, error) {
	if c := r.getFactory().Cache(); c != nil {
		if oo, ok := c.Lookup(r.key()); ok {
			return oo, nil
		}
	}
	return fetch(ctx)
}

// invalidate drops the cached listing, the listings in also and every
// analytics report, since any mutation can move the totals.
func (r *Resource) invalidate(also ...ResourceID) {
	c := r.getFactory().Cache()
	if c == nil {
		return
	}
	c.Forget(append(also, r.key())...)
	c.ForgetGroup(analyticsGroup)
}

// client returns the backend client or an error when the factory is unset.
func (r *Resource) client() (*api.Client, error) {
	f := r.getFactory()
	if f == nil || f.Client() == nil {
		return nil, fmt.Errorf("no client configured for %s", r.key())
	}
	return f.Client(), nil
}

// toIDs converts row ids back to backend ids.
func toIDs(ss []string) ([]int, error) {
	ids := make([]int, 0, len(ss))
	for _, s := range ss {
		id, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
