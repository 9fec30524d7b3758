package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostRecord registra el costo logístico de una transferencia ejecutada.
// Amount = Quantity * costo unitario de la ruta. OrderID queda vacío para
// traslados entre bodegas sin orden asociada.
type CostRecord struct {
	ID          string
	SKU         string
	Origin      string
	Destination string
	Quantity    int64
	Amount      decimal.Decimal
	OrderID     string
	CreatedAt   time.Time
}
