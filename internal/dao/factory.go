// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package dao

import (
	"github.com/stockr/stockr/internal/api"
)

// APIFactory implements the Factory interface using an api.Client.
type APIFactory struct {
	client *api.Client
	cache  *ListingCache
}

// NewFactory creates a new APIFactory with the given client.
func NewFactory(client *api.Client) *APIFactory {
	return &APIFactory{
		client: client,
		cache:  NewListingCache(DefaultCacheTTL),
	}
}

// Client returns the backend client.
func (f *APIFactory) Client() *api.Client {
	return f.client
}

// Cache returns the shared listing cache.
func (f *APIFactory) Cache() *ListingCache {
	return f.cache
}
