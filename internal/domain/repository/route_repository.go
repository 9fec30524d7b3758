package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/scms-api/internal/domain/entity"
)

// OriginStock es una fila del join rutas-stock: un origen con arista hacia un
// destino dado y su existencia del SKU consultado.
type OriginStock struct {
	Origin   string
	Role     string
	Cost     decimal.Decimal
	Quantity int64
}

// RouteRepository define el puerto de consulta sobre la tabla de rutas
// (solo lectura para el core).
type RouteRepository interface {
	// Get devuelve nil, nil cuando no existe arista para el par ordenado.
	Get(ctx context.Context, origin, destination string) (*entity.RouteEdge, error)
	ListAll(ctx context.Context) ([]entity.RouteEdge, error)
	// ListOriginsWithStock lista los orígenes con arista hacia destination y
	// stock positivo del SKU, ordenados por nombre de origen.
	ListOriginsWithStock(ctx context.Context, destination, sku string) ([]OriginStock, error)
}
