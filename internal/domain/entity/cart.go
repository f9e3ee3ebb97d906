package entity

// CartItem is a snapshot of a product at add-time plus the requested
// quantity. Later edits to the catalog product do not change items
// already in the cart.
type CartItem struct {
	Product
	Quantity int
}

// Cart holds the items of one session in insertion order. Total is
// recomputed after every mutation, never stored stale.
type Cart struct {
	Items []CartItem
	Total float64
}

// Clone returns a defensive copy so callers never observe in-place
// mutation of the live cart.
func (c Cart) Clone() Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items, Total: c.Total}
}
