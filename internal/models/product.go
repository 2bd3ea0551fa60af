package models

// Product is a stock item. Quantity is mutated only via signed adjustments
// and may never go below zero.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	Unit          string  `json:"unit"`
	Quantity      float64 `json:"quantity"`
	MinThreshold  float64 `json:"min_threshold"`
	SupplierNotes string  `json:"supplier_notes"`
}

// IsLowStock reports whether the product is at or below its minimum threshold.
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.MinThreshold
}

// AddProductRequest represents the request body for adding a product
type AddProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	Unit          string  `json:"unit" validate:"required"`
	Quantity      float64 `json:"quantity" validate:"gte=0"`
	MinThreshold  float64 `json:"min_threshold" validate:"gte=0"`
	SupplierNotes string  `json:"supplier_notes"`
}

// AdjustQuantityRequest represents a signed stock adjustment.
// Positive delta restocks, negative delta consumes.
type AdjustQuantityRequest struct {
	Delta float64 `json:"delta"`
}
