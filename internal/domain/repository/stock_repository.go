package repository

import (
	"context"

	"github.com/jhoicas/scms-api/internal/domain/entity"
)

// LowStockRow es una fila del listado de stock crítico (join stock-productos).
type LowStockRow struct {
	SKU              string
	ProductName      string
	Location         string
	Quantity         int64
	ReorderThreshold int64
}

// StockRepository define el puerto para consultar/actualizar el libro de
// existencias por SKU+ubicación. Usado dentro de transacciones para
// garantizar consistencia.
type StockRepository interface {
	// Get devuelve nil, nil cuando no existe fila para el par.
	Get(ctx context.Context, sku, location string) (*entity.StockEntry, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Devuelve nil, nil cuando la fila no existe.
	GetForUpdate(ctx context.Context, sku, location string) (*entity.StockEntry, error)
	Upsert(ctx context.Context, stock *entity.StockEntry) error
	// AddQuantity suma delta a la fila, creándola si no existe.
	AddQuantity(ctx context.Context, sku, location string, delta int64) error
	ListAll(ctx context.Context) ([]*entity.StockEntry, error)
	ListBySKU(ctx context.Context, sku string) ([]*entity.StockEntry, error)
	// TotalBySKU suma las cantidades del SKU en todas las ubicaciones.
	TotalBySKU(ctx context.Context, sku string) (int64, error)
	ListLowStock(ctx context.Context) ([]LowStockRow, error)
}
