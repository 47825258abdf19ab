package dao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingCache(t *testing.T) {
	c := NewListingCache(time.Minute)
	oo := []Object{&BaseObject{ID: "1", Name: "Chips"}}

	c.Store(ProductRID, oo)
	c.Store(TotalRevenueRID, oo)
	c.Store(TotalItemsSoldRID, oo)
	got, ok := c.Lookup(ProductRID)
	require.True(t, ok)
	assert.Equal(t, oo, got)

	c.ForgetGroup(analyticsGroup)
	_, ok = c.Lookup(TotalRevenueRID)
	assert.False(t, ok)
	_, ok = c.Lookup(TotalItemsSoldRID)
	assert.False(t, ok)
	_, ok = c.Lookup(ProductRID)
	assert.True(t, ok)

	c.Forget(ProductRID, CategoryRID)
	_, ok = c.Lookup(ProductRID)
	assert.False(t, ok)
}

func TestListingCacheExpiry(t *testing.T) {
	c := NewListingCache(time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }
	c.Store(CategoryRID, []Object{&BaseObject{ID: "1"}})

	now = now.Add(59 * time.Second)
	_, ok := c.Lookup(CategoryRID)
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = c.Lookup(CategoryRID)
	assert.False(t, ok)
}
