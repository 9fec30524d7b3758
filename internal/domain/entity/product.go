package entity

import "time"

// Product representa un producto identificado por su SKU.
// ReorderThreshold define el nivel bajo el cual el stock se considera crítico.
type Product struct {
	SKU              string
	Name             string
	Description      string
	ReorderThreshold int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
