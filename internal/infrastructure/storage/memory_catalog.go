package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
)

type memoryCatalogRepository struct {
	mu      sync.RWMutex
	table   []entity.Product // insertion order, searches return this order
	index   map[string]int   // SKU -> position in table
	seed    []entity.Product
	latency time.Duration
}

// NewMemoryCatalogRepository creates an in-memory catalog store initialized
// from seed. Reset restores exactly that seed set. latency simulates backend
// read delay before snapshot reads; zero disables it.
func NewMemoryCatalogRepository(seed []entity.Product, latency time.Duration) repository.CatalogRepository {
	m := &memoryCatalogRepository{
		seed:    cloneProducts(seed),
		latency: latency,
	}
	m.replaceTable(seed)
	return m
}

// GetAll returns a snapshot copy of the whole table.
func (m *memoryCatalogRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	if err := m.simulateLatency(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return cloneProducts(m.table), nil
}

// GetBySKU looks up one product by exact SKU.
func (m *memoryCatalogRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.index[sku]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrProductNotFound, sku)
	}
	p := cloneProduct(m.table[idx])
	return &p, nil
}

// Search matches the query as a case-insensitive substring of name,
// category, SKU or any serial number. Results keep table order.
func (m *memoryCatalogRepository) Search(ctx context.Context, query string) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	var results []entity.Product
	for _, p := range m.table {
		if matchesProduct(p, q) {
			results = append(results, cloneProduct(p))
		}
	}
	return results, nil
}

// SetStock replaces the stock quantity of a SKU. Used by external sync.
func (m *memoryCatalogRepository) SetStock(ctx context.Context, sku string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("stock quantity must not be negative: %d", quantity)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.index[sku]
	if !ok {
		return fmt.Errorf("%w: %s", repository.ErrProductNotFound, sku)
	}
	m.table[idx].Stock = quantity
	return nil
}

// Upsert inserts a new product or merges a fresh aggregate into an existing
// one. Stock, serial numbers and category fully supersede the prior state;
// price is overwritten only when the incoming price is positive.
func (m *memoryCatalogRepository) Upsert(ctx context.Context, product entity.Product) error {
	if product.SKU == "" {
		return fmt.Errorf("product has no SKU: %q", product.Name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.index[product.SKU]
	if !ok {
		m.index[product.SKU] = len(m.table)
		m.table = append(m.table, cloneProduct(product))
		return nil
	}

	existing := &m.table[idx]
	existing.Stock = product.Stock
	existing.SerialNumbers = append([]string(nil), product.SerialNumbers...)
	existing.Category = product.Category
	if product.Price > 0 {
		existing.Price = product.Price
	}
	return nil
}

// Reset replaces the table with the seed set.
func (m *memoryCatalogRepository) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.replaceTable(m.seed)
	return nil
}

// Stats summarizes the current catalog.
func (m *memoryCatalogRepository) Stats(ctx context.Context) (entity.InventoryStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := entity.InventoryStats{TotalProducts: len(m.table)}
	categories := make(map[string]struct{})
	for _, p := range m.table {
		stats.TotalStock += p.Stock
		if p.Stock > 0 && p.Stock < 5 {
			stats.LowStockCount++
		}
		categories[p.Category] = struct{}{}
	}
	stats.Categories = len(categories)
	return stats, nil
}

func (m *memoryCatalogRepository) replaceTable(products []entity.Product) {
	m.table = cloneProducts(products)
	m.index = make(map[string]int, len(products))
	for i, p := range m.table {
		m.index[p.SKU] = i
	}
}

func (m *memoryCatalogRepository) simulateLatency(ctx context.Context) error {
	if m.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(m.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func matchesProduct(p entity.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.SKU), q) {
		return true
	}
	for _, sn := range p.SerialNumbers {
		if strings.Contains(strings.ToLower(sn), q) {
			return true
		}
	}
	return false
}

func cloneProduct(p entity.Product) entity.Product {
	p.SerialNumbers = append([]string(nil), p.SerialNumbers...)
	return p
}

func cloneProducts(products []entity.Product) []entity.Product {
	out := make([]entity.Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out
}
