package entity

import "strings"

// Product is one canonical stock record, keyed by SKU.
type Product struct {
	SKU           string
	Name          string
	Description   string
	Category      string
	Price         float64
	Stock         int
	ImageURL      string
	SerialNumbers []string
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// InventoryStats catalog-wide summary.
type InventoryStats struct {
	TotalProducts int
	TotalStock    int
	LowStockCount int
	Categories    int
}

// GenerateSKU derives a stable slug SKU from a product name: lower-case,
// trimmed, every run of non-alphanumeric characters collapsed to a single
// hyphen, leading/trailing hyphens removed. Pure, so repeated uploads of
// the same catalog converge on the same SKUs instead of duplicating.
func GenerateSKU(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	pendingHyphen := false
	for _, r := range name {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}
