package dto

import "time"

// PlaceOrderRequest body para POST /api/orders.
type PlaceOrderRequest struct {
	SKU          string `json:"sku"`
	Quantity     int64  `json:"quantity"`
	CustomerName string `json:"customer_name"`
	Location     string `json:"location"`
}

// UpdateOrderStatusRequest body para PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse representación pública de una orden.
type OrderResponse struct {
	ID           string    `json:"id"`
	SKU          string    `json:"sku"`
	Quantity     int64     `json:"quantity"`
	CustomerName string    `json:"customer_name"`
	Location     string    `json:"location"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
