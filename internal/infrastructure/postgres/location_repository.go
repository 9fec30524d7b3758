package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/scms-api/internal/domain/entity"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// GetByName obtiene una ubicación por nombre. nil, nil si no existe.
func (r *LocationRepo) GetByName(ctx context.Context, name string) (*entity.Location, error) {
	query := `SELECT name, role FROM locations WHERE name = $1`
	var l entity.Location
	err := r.q.QueryRow(ctx, query, name).Scan(&l.Name, &l.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// ListWarehouses lista las bodegas en orden alfabético estable.
func (r *LocationRepo) ListWarehouses(ctx context.Context) ([]entity.Location, error) {
	query := `SELECT name, role FROM locations WHERE role = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, entity.LocationRoleWarehouse)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var locations []entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.Name, &l.Role); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}
