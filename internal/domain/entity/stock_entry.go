package entity

import "time"

// StockEntry representa la existencia de un SKU en una ubicación.
// Invariante: Quantity >= 0 en todo momento; el único escritor es el
// ejecutor de transferencias, dentro de una transacción.
type StockEntry struct {
	SKU       string
	Location  string
	Quantity  int64
	UpdatedAt time.Time
}
