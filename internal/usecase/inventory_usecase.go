package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
	"github.com/waqashussainziarana-ux/woogenius/internal/infrastructure/parser"
)

// Bulk upload column layout: name, category, status, identifier (IMEI/SN),
// quantity, cost, price. Extra trailing columns are ignored.
const (
	colName = iota
	colCategory
	colStatus
	colIdentifier
	colQuantity
	colCost
	colPrice

	minColumns = 5
)

// InventoryUseCase ingests bulk uploads and drives catalog sync.
type InventoryUseCase interface {
	// ProcessUpload reconciles a CSV export into the catalog and returns
	// the count of data rows that were accepted.
	ProcessUpload(ctx context.Context, rawText string) (int, error)

	// ProcessSheetUpload does the same for an .xlsx export.
	ProcessSheetUpload(ctx context.Context, data []byte, filename string) (int, error)

	// SyncStock replaces the stock of one SKU (external sync path).
	SyncStock(ctx context.Context, sku string, quantity int) error

	// Reset restores the seed catalog.
	Reset(ctx context.Context) error

	// Stats summarizes the current catalog.
	Stats(ctx context.Context) (entity.InventoryStats, error)
}

type inventoryUseCase struct {
	catalogRepo repository.CatalogRepository
	sheetParser repository.SheetParser
}

// NewInventoryUseCase creates the ingestion engine.
func NewInventoryUseCase(catalogRepo repository.CatalogRepository, sheetParser repository.SheetParser) InventoryUseCase {
	return &inventoryUseCase{
		catalogRepo: catalogRepo,
		sheetParser: sheetParser,
	}
}

// aggregate is the in-progress merged record for one derived SKU during a
// single upload.
type aggregate struct {
	product entity.Product
}

// uploadState keys aggregates by SKU and remembers first-seen order so the
// final upserts are deterministic.
type uploadState struct {
	aggregates map[string]*aggregate
	order      []string
	accepted   int
}

func newUploadState() *uploadState {
	return &uploadState{aggregates: make(map[string]*aggregate)}
}

// ProcessUpload reconciles a CSV export into the catalog.
func (u *inventoryUseCase) ProcessUpload(ctx context.Context, rawText string) (int, error) {
	lines := parser.SplitLines(rawText)
	if len(lines) <= 1 {
		// Empty file, or header only: nothing to do, no store mutation.
		return 0, nil
	}

	state := newUploadState()
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		state.consumeRow(parser.ParseLine(line))
	}

	if err := u.flush(ctx, state); err != nil {
		return 0, err
	}

	log.Printf("📦 CSV upload processed: %d rows, %d products", state.accepted, len(state.order))
	return state.accepted, nil
}

// ProcessSheetUpload reconciles an .xlsx export through the same
// aggregation pipeline.
func (u *inventoryUseCase) ProcessSheetUpload(ctx context.Context, data []byte, filename string) (int, error) {
	if u.sheetParser == nil {
		return 0, fmt.Errorf("sheet uploads are not supported")
	}

	rows, err := u.sheetParser.ParseRows(ctx, data, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to parse sheet: %w", err)
	}
	if len(rows) <= 1 {
		return 0, nil
	}

	state := newUploadState()
	for _, row := range rows[1:] {
		fields := make([]string, len(row))
		for i, cell := range row {
			fields[i] = strings.TrimSpace(cell)
		}
		state.consumeRow(fields)
	}

	if err := u.flush(ctx, state); err != nil {
		return 0, err
	}

	log.Printf("📦 Sheet upload processed: %d rows, %d products (%s)", state.accepted, len(state.order), filename)
	return state.accepted, nil
}

// consumeRow folds one parsed data row into the upload's aggregates.
func (s *uploadState) consumeRow(fields []string) {
	if len(fields) < minColumns {
		return
	}

	name := fields[colName]
	if name == "" {
		return
	}
	sku := entity.GenerateSKU(name)
	if sku == "" {
		return
	}

	category := fields[colCategory]
	status := strings.ToLower(fields[colStatus])
	identifier := strings.TrimSpace(fields[colIdentifier])
	quantity := parseQuantity(fields[colQuantity])

	price := 0.0
	if len(fields) > colPrice {
		price = parsePrice(fields[colPrice])
	}

	agg, exists := s.aggregates[sku]
	if !exists {
		agg = &aggregate{product: entity.Product{
			SKU:         sku,
			Name:        name,
			Description: fmt.Sprintf("%s - %s", category, name),
			Category:    category,
			Price:       price,
			ImageURL:    fmt.Sprintf("https://picsum.photos/400/400?random=%d", rand.Intn(1000)),
		}}
		s.aggregates[sku] = agg
		s.order = append(s.order, sku)
	}

	// Only units still in inventory count: any other status ("sold", ...)
	// contributes zero stock and no serial number.
	if strings.Contains(status, "available") {
		agg.product.Stock += quantity
		if identifier != "" && !strings.EqualFold(identifier, "n/a") {
			agg.product.SerialNumbers = append(agg.product.SerialNumbers, identifier)
		}
	}

	// Last valid price wins; zero or unparsable prices leave the previous
	// one untouched.
	if price > 0 {
		agg.product.Price = price
	}

	if agg.product.Category == "" && category != "" {
		agg.product.Category = category
	}

	s.accepted++
}

// flush upserts every aggregate into the catalog. Each upload fully
// supersedes the prior stock/serial state of the SKUs it covers.
func (u *inventoryUseCase) flush(ctx context.Context, state *uploadState) error {
	for _, sku := range state.order {
		if err := u.catalogRepo.Upsert(ctx, state.aggregates[sku].product); err != nil {
			return fmt.Errorf("failed to upsert %s: %w", sku, err)
		}
	}
	return nil
}

// SyncStock replaces the stock of one SKU.
func (u *inventoryUseCase) SyncStock(ctx context.Context, sku string, quantity int) error {
	return u.catalogRepo.SetStock(ctx, sku, quantity)
}

// Reset restores the seed catalog.
func (u *inventoryUseCase) Reset(ctx context.Context) error {
	return u.catalogRepo.Reset(ctx)
}

// Stats summarizes the current catalog.
func (u *inventoryUseCase) Stats(ctx context.Context) (entity.InventoryStats, error) {
	return u.catalogRepo.Stats(ctx)
}

func parseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parsePrice strips currency symbols and thousands separators before
// parsing. Anything unparsable counts as no price.
func parsePrice(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
