package entity

import "time"

// Estados válidos de una orden de cliente.
const (
	OrderStatusPending   = "Pending"
	OrderStatusProcessed = "Processed"
	OrderStatusShipped   = "Shipped"
)

// Order representa una orden de cliente sobre un SKU, destinada a una
// ubicación de entrega. El despacho físico se registra vía el ejecutor
// de transferencias (MoveOrderToCustomer).
type Order struct {
	ID           string
	SKU          string
	Quantity     int64
	CustomerName string
	Location     string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
