package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
)

func newTestCatalog() repository.CatalogRepository {
	return NewMemoryCatalogRepository(DefaultSeed(), 0)
}

func TestCatalogGetAllReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newTestCatalog()

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 4)

	// Mutating the returned slice must not leak into the store.
	first[0].Stock = 9999
	first[0].SerialNumbers = append(first[0].SerialNumbers, "HACK")

	second, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, second[0].Stock)
	assert.Empty(t, second[0].SerialNumbers)
}

func TestCatalogGetBySKU(t *testing.T) {
	ctx := context.Background()
	repo := newTestCatalog()

	p, err := repo.GetBySKU(ctx, "phone-ultra-x")
	require.NoError(t, err)
	assert.Equal(t, "UltraPhone X", p.Name)
	assert.Equal(t, 0, p.Stock)

	_, err = repo.GetBySKU(ctx, "no-such-sku")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalogSearch(t *testing.T) {
	ctx := context.Background()
	repo := newTestCatalog()

	require.NoError(t, repo.Upsert(ctx, entity.Product{
		SKU:           "widget",
		Name:          "Widget",
		Category:      "Gadgets",
		SerialNumbers: []string{"SN-777"},
	}))

	testCases := []struct {
		name     string
		query    string
		expected []string // SKUs, table order
	}{
		{name: "by name substring", query: "book", expected: []string{"lap-pro-16"}},
		{name: "case insensitive", query: "ULTRA", expected: []string{"phone-ultra-x"}},
		{name: "by category", query: "audio", expected: []string{"head-nc-500"}},
		{name: "by sku", query: "watch-sport", expected: []string{"watch-sport-2"}},
		{name: "by serial number", query: "sn-777", expected: []string{"widget"}},
		{name: "no match is empty not error", query: "zzz", expected: nil},
		{name: "blank query", query: "   ", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := repo.Search(ctx, tc.query)
			require.NoError(t, err)
			var skus []string
			for _, p := range results {
				skus = append(skus, p.SKU)
			}
			assert.Equal(t, tc.expected, skus)
		})
	}
}

func TestCatalogSetStock(t *testing.T) {
	ctx := context.Background()
	repo := newTestCatalog()

	require.NoError(t, repo.SetStock(ctx, "phone-ultra-x", 7))
	p, err := repo.GetBySKU(ctx, "phone-ultra-x")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock)

	assert.Error(t, repo.SetStock(ctx, "phone-ultra-x", -1), "negative stock must be rejected")
	assert.ErrorIs(t, repo.SetStock(ctx, "no-such-sku", 3), repository.ErrProductNotFound)
}

func TestCatalogUpsertMergePolicy(t *testing.T) {
	ctx := context.Background()
	repo := newTestCatalog()

	// Fresh aggregate fully supersedes stock, serials and category; price
	// only when positive.
	require.NoError(t, repo.Upsert(ctx, entity.Product{
		SKU:           "lap-pro-16",
		Name:          `ProBook 16"`,
		Category:      "Computers",
		Price:         0,
		Stock:         3,
		SerialNumbers: []string{"A1", "A2"},
	}))

	p, err := repo.GetBySKU(ctx, "lap-pro-16")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)
	assert.Equal(t, []string{"A1", "A2"}, p.SerialNumbers)
	assert.Equal(t, "Computers", p.Category)
	assert.Equal(t, 2499.99, p.Price, "zero price must not overwrite")

	require.NoError(t, repo.Upsert(ctx, entity.Product{
		SKU:      "lap-pro-16",
		Name:     `ProBook 16"`,
		Category: "Computers",
		Price:    1999.00,
		Stock:    5,
	}))

	p, err = repo.GetBySKU(ctx, "lap-pro-16")
	require.NoError(t, err)
	assert.Equal(t, 1999.00, p.Price)
	assert.Empty(t, p.SerialNumbers, "serials fully replaced per upsert")
}

func TestCatalogReset(t *testing.T) {
	ctx := context.Background()
	repo := newTestCatalog()

	require.NoError(t, repo.Upsert(ctx, entity.Product{SKU: "widget", Name: "Widget", Stock: 3}))
	require.NoError(t, repo.SetStock(ctx, "lap-pro-16", 1))

	require.NoError(t, repo.Reset(ctx))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	p, err := repo.GetBySKU(ctx, "lap-pro-16")
	require.NoError(t, err)
	assert.Equal(t, 12, p.Stock)

	_, err = repo.GetBySKU(ctx, "widget")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalogStats(t *testing.T) {
	ctx := context.Background()
	repo := newTestCatalog()

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 12+45+0+8, stats.TotalStock)
	assert.Equal(t, 0, stats.LowStockCount)
	assert.Equal(t, 4, stats.Categories)

	require.NoError(t, repo.SetStock(ctx, "watch-sport-2", 2))
	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.LowStockCount)
}
