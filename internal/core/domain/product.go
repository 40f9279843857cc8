package domain

import "time"

// Product is a managed catalog entry.
type Product struct {
	ID            string    `json:"id"`
	Active        bool      `json:"active"`
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	CreatedByID   string    `json:"created_by_id,omitempty"`
	UpdatedByID   string    `json:"updated_by_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Image         string    `json:"image,omitempty"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
}
