package model

// Product is a read-only catalog record.
type Product struct {
	ProductID string   `json:"productId"`
	Name      string   `json:"name"`
	ImageURLs []string `json:"imageUrls"`
}

// Variant is a purchasable variation of a product. Price is in minor currency
// units. Stock and MaximumInOrder are nil when not tracked.
type Variant struct {
	VariantID      string `json:"variantId"`
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	Stock          *int64 `json:"stock,omitempty"`
	MaximumInOrder *int64 `json:"maximumInOrder,omitempty"`
}
