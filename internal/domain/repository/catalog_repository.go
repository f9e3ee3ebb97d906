package repository

import (
	"context"
	"errors"

	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
)

// ErrProductNotFound is returned when a SKU is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository is the authoritative product table, keyed by SKU.
type CatalogRepository interface {
	// GetAll returns a snapshot copy of the whole table, never the live slice.
	GetAll(ctx context.Context) ([]entity.Product, error)

	// GetBySKU looks up one product by exact SKU.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// Search does a case-insensitive substring match against name, category,
	// SKU and serial numbers. Results come back in table order, unranked.
	// No match is a normal empty result, not an error.
	Search(ctx context.Context, query string) ([]entity.Product, error)

	// SetStock replaces the stock quantity of a SKU. Quantity must be >= 0.
	SetStock(ctx context.Context, sku string, quantity int) error

	// Upsert inserts the product if its SKU is absent, otherwise merges it:
	// stock, serial numbers and category are overwritten unconditionally,
	// price only when the incoming price is positive.
	Upsert(ctx context.Context, product entity.Product) error

	// Reset replaces the table with the immutable seed set.
	Reset(ctx context.Context) error

	// Stats summarizes the current catalog.
	Stats(ctx context.Context) (entity.InventoryStats, error)
}
