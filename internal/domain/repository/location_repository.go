package repository

import (
	"context"

	"github.com/jhoicas/scms-api/internal/domain/entity"
)

// LocationRepository define el puerto de consulta sobre ubicaciones
// (datos de referencia, solo lectura para el core).
type LocationRepository interface {
	// GetByName devuelve nil, nil cuando la ubicación no existe.
	GetByName(ctx context.Context, name string) (*entity.Location, error)
	// ListWarehouses lista las ubicaciones con rol warehouse, ordenadas por nombre.
	ListWarehouses(ctx context.Context) ([]entity.Location, error)
}
