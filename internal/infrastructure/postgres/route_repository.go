package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/scms-api/internal/domain/entity"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

var _ repository.RouteRepository = (*RouteRepo)(nil)

// RouteRepo implementación de RouteRepository sobre PostgreSQL (solo lectura).
type RouteRepo struct {
	q Querier
}

// NewRouteRepository construye el adaptador de rutas. Pasar pool o tx (Querier).
func NewRouteRepository(q Querier) *RouteRepo {
	return &RouteRepo{q: q}
}

// Get obtiene la arista para el par ordenado. nil, nil si no existe.
func (r *RouteRepo) Get(ctx context.Context, origin, destination string) (*entity.RouteEdge, error) {
	query := `
		SELECT origin, destination, cost
		FROM routes WHERE origin = $1 AND destination = $2`
	var e entity.RouteEdge
	err := r.q.QueryRow(ctx, query, origin, destination).Scan(&e.Origin, &e.Destination, &e.Cost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get route: %w", err)
	}
	return &e, nil
}

// ListAll lista todas las aristas de la tabla de rutas.
func (r *RouteRepo) ListAll(ctx context.Context) ([]entity.RouteEdge, error) {
	query := `SELECT origin, destination, cost FROM routes ORDER BY origin, destination`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	var edges []entity.RouteEdge
	for rows.Next() {
		var e entity.RouteEdge
		if err := rows.Scan(&e.Origin, &e.Destination, &e.Cost); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// ListOriginsWithStock cruza rutas hacia destination con el stock del SKU:
// solo orígenes con arista y cantidad >= 1, ordenados por nombre.
func (r *RouteRepo) ListOriginsWithStock(ctx context.Context, destination, sku string) ([]repository.OriginStock, error) {
	query := `
		SELECT r.origin, l.role, r.cost, s.quantity
		FROM routes r
		JOIN stock s ON s.location = r.origin AND s.sku = $2
		JOIN locations l ON l.name = r.origin
		WHERE r.destination = $1 AND s.quantity >= 1
		ORDER BY r.origin`
	rows, err := r.q.Query(ctx, query, destination, sku)
	if err != nil {
		return nil, fmt.Errorf("list origins with stock: %w", err)
	}
	defer rows.Close()

	var out []repository.OriginStock
	for rows.Next() {
		var row repository.OriginStock
		if err := rows.Scan(&row.Origin, &row.Role, &row.Cost, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan origin with stock: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
