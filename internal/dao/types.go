package dao

import (
	"context"
	"fmt"
	"strings"

	"github.com/stockr/stockr/internal/api"
)

// ResourceID identifies a backend collection.
type ResourceID struct {
	Group    string // e.g., "inventory", "analytics"
	Resource string // e.g., "products", "revenue-by-product"
}

// String returns a string representation in the form "group/resource".
func (r ResourceID) String() string {
	return fmt.Sprintf("%s/%s", r.Group, r.Resource)
}

// Parse parses a string in the form "group/resource" into a ResourceID.
func (r *ResourceID) Parse(s string) error {
	group, resource, ok := strings.Cut(s, "/")
	if !ok || group == "" || resource == "" {
		return fmt.Errorf("invalid resource ID format: %s (expected group/resource)", s)
	}
	r.Group, r.Resource = group, resource
	return nil
}

const (
	inventoryGroup = "inventory"
	analyticsGroup = "analytics"
)

// Predefined ResourceID variables for the backend collections.
var (
	ProductRID  = ResourceID{Group: inventoryGroup, Resource: "products"}
	CategoryRID = ResourceID{Group: inventoryGroup, Resource: "categories"}
	SaleRID     = ResourceID{Group: inventoryGroup, Resource: "sales"}

	InventoryLevelsProductRID  = ResourceID{Group: analyticsGroup, Resource: api.InventoryLevelsProduct}
	InventoryLevelsCategoryRID = ResourceID{Group: analyticsGroup, Resource: api.InventoryLevelsCategory}
	TotalRevenueRID            = ResourceID{Group: analyticsGroup, Resource: api.TotalRevenueReport}
	TotalItemsSoldRID          = ResourceID{Group: analyticsGroup, Resource: api.TotalItemsSoldReport}
	RevenueByProductRID        = ResourceID{Group: analyticsGroup, Resource: api.RevenueByProduct}
	RevenueByCategoryRID       = ResourceID{Group: analyticsGroup, Resource: api.RevenueByCategory}
	ItemsSoldProductRID        = ResourceID{Group: analyticsGroup, Resource: api.ItemsSoldProduct}
	ItemsSoldCategoryRID       = ResourceID{Group: analyticsGroup, Resource: api.ItemsSoldCategory}
)

// Object represents a fetched record with common metadata.
type Object interface {
	GetID() string
	GetName() string
	GetRaw() any
}

// Factory provides the backend client and shared cache.
type Factory interface {
	Client() *api.Client
	Cache() *ListingCache
}

// Lister retrieves a whole collection.
type Lister interface {
	List(ctx context.Context) ([]Object, error)
}

// Accessor combines listing capabilities with initialization.
type Accessor interface {
	Lister
	Init(Factory, *ResourceID)
	ResourceID() *ResourceID
}

// Creator posts new records.
type Creator interface {
	Create(ctx context.Context, payload any) error
}

// Updater replaces existing records.
type Updater interface {
	Update(ctx context.Context, id string, payload any) error
}

// Nuker provides deletion capabilities.
type Nuker interface {
	Delete(ctx context.Context, ids []string) error
}
