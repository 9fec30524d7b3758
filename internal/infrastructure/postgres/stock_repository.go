package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/scms-api/internal/domain/entity"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la existencia de un SKU en una ubicación. nil, nil si no hay fila.
func (r *StockRepo) Get(ctx context.Context, sku, location string) (*entity.StockEntry, error) {
	query := `
		SELECT sku, location, quantity, updated_at
		FROM stock WHERE sku = $1 AND location = $2`
	var s entity.StockEntry
	err := r.q.QueryRow(ctx, query, sku, location).Scan(
		&s.SKU, &s.Location, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la existencia y bloquea la fila (SELECT FOR UPDATE)
// para serializar transferencias concurrentes sobre el mismo origen.
func (r *StockRepo) GetForUpdate(ctx context.Context, sku, location string) (*entity.StockEntry, error) {
	query := `
		SELECT sku, location, quantity, updated_at
		FROM stock WHERE sku = $1 AND location = $2
		FOR UPDATE`
	var s entity.StockEntry
	err := r.q.QueryRow(ctx, query, sku, location).Scan(
		&s.SKU, &s.Location, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad (por SKU y ubicación).
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.StockEntry) error {
	query := `
		INSERT INTO stock (sku, location, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (sku, location)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, stock.SKU, stock.Location, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// AddQuantity suma delta a la fila, creándola si no existe.
func (r *StockRepo) AddQuantity(ctx context.Context, sku, location string, delta int64) error {
	query := `
		INSERT INTO stock (sku, location, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (sku, location)
		DO UPDATE SET quantity = stock.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, sku, location, delta)
	if err != nil {
		return fmt.Errorf("add stock quantity: %w", err)
	}
	return nil
}

// ListAll lista el libro de existencias completo.
func (r *StockRepo) ListAll(ctx context.Context) ([]*entity.StockEntry, error) {
	query := `
		SELECT sku, location, quantity, updated_at
		FROM stock ORDER BY sku, location`
	return r.list(ctx, query)
}

// ListBySKU lista las existencias de un SKU en todas las ubicaciones.
func (r *StockRepo) ListBySKU(ctx context.Context, sku string) ([]*entity.StockEntry, error) {
	query := `
		SELECT sku, location, quantity, updated_at
		FROM stock WHERE sku = $1 ORDER BY location`
	return r.list(ctx, query, sku)
}

func (r *StockRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var entries []*entity.StockEntry
	for rows.Next() {
		var s entity.StockEntry
		if err := rows.Scan(&s.SKU, &s.Location, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		entries = append(entries, &s)
	}
	return entries, rows.Err()
}

// TotalBySKU suma las cantidades del SKU en todas las ubicaciones.
func (r *StockRepo) TotalBySKU(ctx context.Context, sku string) (int64, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM stock WHERE sku = $1`
	var total int64
	if err := r.q.QueryRow(ctx, query, sku).Scan(&total); err != nil {
		return 0, fmt.Errorf("total stock by sku: %w", err)
	}
	return total, nil
}

// ListLowStock lista las filas bajo el umbral de reorden de su producto.
func (r *StockRepo) ListLowStock(ctx context.Context) ([]repository.LowStockRow, error) {
	query := `
		SELECT s.sku, p.name, s.location, s.quantity, p.reorder_threshold
		FROM stock s
		JOIN products p ON p.sku = s.sku
		WHERE s.quantity < p.reorder_threshold
		ORDER BY s.sku, s.location`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var out []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.SKU, &row.ProductName, &row.Location, &row.Quantity, &row.ReorderThreshold); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
