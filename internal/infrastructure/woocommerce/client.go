// Package woocommerce stubs the storefront checkout. A real deployment
// would create an order via the WooCommerce REST API and return its payment
// link.
package woocommerce

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
)

const defaultBaseURL = "https://your-store.com/checkout"

type client struct {
	baseURL string
}

// NewClient creates the checkout client. baseURL may be empty.
func NewClient(baseURL string) repository.CheckoutRepository {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{baseURL: baseURL}
}

// CheckoutURL returns an opaque checkout link. No payment side effects.
func (c *client) CheckoutURL(ctx context.Context) (string, error) {
	return fmt.Sprintf("%s?session_id=%s", c.baseURL, uuid.New().String()), nil
}
