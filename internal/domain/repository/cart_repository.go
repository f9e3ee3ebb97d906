package repository

import (
	"context"

	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
)

// CartListener receives a cart snapshot on every mutation.
type CartListener func(entity.Cart)

// CartRepository holds the single active session's cart.
type CartRepository interface {
	// AddToCart adds quantity units of product. An existing item with the
	// same SKU has its quantity incremented, otherwise a field-wise copy of
	// the product is appended. Returns the cart after the mutation.
	AddToCart(ctx context.Context, product entity.Product, quantity int) (entity.Cart, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context) error

	// GetCart returns a defensive copy of the current cart.
	GetCart(ctx context.Context) (entity.Cart, error)

	// Subscribe registers a listener that is invoked once immediately with
	// the current snapshot and again after every mutation, synchronously and
	// in registration order. The returned function removes the listener.
	Subscribe(listener CartListener) (unsubscribe func())
}
