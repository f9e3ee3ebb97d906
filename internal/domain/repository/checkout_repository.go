package repository

import "context"

// CheckoutRepository creates checkout sessions for the current cart.
type CheckoutRepository interface {
	// CheckoutURL returns an opaque URL the customer can finish the
	// purchase at. No payment side effects.
	CheckoutURL(ctx context.Context) (string, error)
}
