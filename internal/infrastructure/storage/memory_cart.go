package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
)

type cartSubscriber struct {
	id       string
	listener repository.CartListener
}

type memoryCartRepository struct {
	mu          sync.Mutex
	cart        entity.Cart
	subscribers []cartSubscriber // registration order == delivery order
}

// NewMemoryCartRepository creates an empty single-session cart store.
// A production version would key carts by session id.
func NewMemoryCartRepository() repository.CartRepository {
	return &memoryCartRepository{}
}

// AddToCart adds quantity units of product, incrementing an existing item
// with the same SKU. The total is recomputed and the new snapshot is
// published to all subscribers before returning.
func (m *memoryCartRepository) AddToCart(ctx context.Context, product entity.Product, quantity int) (entity.Cart, error) {
	if quantity <= 0 {
		return entity.Cart{}, fmt.Errorf("quantity must be positive: %d", quantity)
	}

	m.mu.Lock()
	found := false
	for i := range m.cart.Items {
		if m.cart.Items[i].SKU == product.SKU {
			m.cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		m.cart.Items = append(m.cart.Items, entity.CartItem{
			Product:  cloneProduct(product),
			Quantity: quantity,
		})
	}
	m.recomputeTotal()
	snapshot := m.cart.Clone()
	listeners := m.currentListeners()
	m.mu.Unlock()

	publish(listeners, snapshot)
	return snapshot, nil
}

// ClearCart empties the cart and publishes the empty snapshot.
func (m *memoryCartRepository) ClearCart(ctx context.Context) error {
	m.mu.Lock()
	m.cart = entity.Cart{}
	snapshot := m.cart.Clone()
	listeners := m.currentListeners()
	m.mu.Unlock()

	publish(listeners, snapshot)
	return nil
}

// GetCart returns a defensive copy of the current cart.
func (m *memoryCartRepository) GetCart(ctx context.Context) (entity.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cart.Clone(), nil
}

// Subscribe registers a listener, invokes it once with the current snapshot
// and returns a removal token. Delivery on mutations is synchronous and in
// registration order.
func (m *memoryCartRepository) Subscribe(listener repository.CartListener) func() {
	m.mu.Lock()
	id := uuid.New().String()
	m.subscribers = append(m.subscribers, cartSubscriber{id: id, listener: listener})
	snapshot := m.cart.Clone()
	m.mu.Unlock()

	listener(snapshot)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, sub := range m.subscribers {
			if sub.id == id {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				return
			}
		}
	}
}

// recomputeTotal keeps Total equal to the exact sum of price*quantity over
// the current items. Caller must hold the lock.
func (m *memoryCartRepository) recomputeTotal() {
	total := 0.0
	for _, item := range m.cart.Items {
		total += item.Price * float64(item.Quantity)
	}
	m.cart.Total = total
}

// currentListeners copies the subscriber list so delivery can happen outside
// the lock without racing unsubscribe. Caller must hold the lock.
func (m *memoryCartRepository) currentListeners() []repository.CartListener {
	listeners := make([]repository.CartListener, len(m.subscribers))
	for i, sub := range m.subscribers {
		listeners[i] = sub.listener
	}
	return listeners
}

// publish delivers the snapshot synchronously on the mutating call's own
// execution turn.
func publish(listeners []repository.CartListener, snapshot entity.Cart) {
	for _, listener := range listeners {
		listener(snapshot)
	}
}
