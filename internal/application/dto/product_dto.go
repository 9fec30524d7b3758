package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU              string `json:"sku"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ReorderThreshold int64  `json:"reorder_threshold"`
}

// UpdateProductRequest body para PUT /api/products/:sku.
type UpdateProductRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ReorderThreshold int64  `json:"reorder_threshold"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	SKU              string    `json:"sku"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	ReorderThreshold int64     `json:"reorder_threshold"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
