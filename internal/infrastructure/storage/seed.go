package storage

import "github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"

// DefaultSeed returns the demo catalog the store boots and resets to.
// phone-ultra-x is deliberately out of stock.
func DefaultSeed() []entity.Product {
	return []entity.Product{
		{
			SKU:         "lap-pro-16",
			Name:        `ProBook 16"`,
			Description: "High performance laptop with M2 chip, 32GB RAM.",
			Category:    "Laptops",
			Price:       2499.99,
			Stock:       12,
			ImageURL:    "https://picsum.photos/400/400?random=1",
		},
		{
			SKU:         "head-nc-500",
			Name:        "NoiseCancel 500",
			Description: "Over-ear noise cancelling headphones with 20h battery.",
			Category:    "Audio",
			Price:       299.99,
			Stock:       45,
			ImageURL:    "https://picsum.photos/400/400?random=2",
		},
		{
			SKU:         "phone-ultra-x",
			Name:        "UltraPhone X",
			Description: "Latest flagship smartphone, 5G, 256GB.",
			Category:    "Phones",
			Price:       999.00,
			Stock:       0,
			ImageURL:    "https://picsum.photos/400/400?random=3",
		},
		{
			SKU:         "watch-sport-2",
			Name:        "SportWatch Gen 2",
			Description: "Waterproof fitness tracker with GPS.",
			Category:    "Wearables",
			Price:       199.50,
			Stock:       8,
			ImageURL:    "https://picsum.photos/400/400?random=4",
		},
	}
}
