package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/scms-api/internal/domain/entity"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx: el despacho la consulta dentro de la transacción
// de la transferencia).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una nueva orden.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, sku, quantity, customer_name, location, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.SKU, order.Quantity, order.CustomerName,
		order.Location, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. nil, nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, sku, quantity, customer_name, location, status, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.SKU, &o.Quantity, &o.CustomerName, &o.Location, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListByCustomer lista las órdenes de un cliente, más recientes primero.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerName string) ([]*entity.Order, error) {
	query := `
		SELECT id, sku, quantity, customer_name, location, status, created_at, updated_at
		FROM orders WHERE customer_name = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, customerName)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.SKU, &o.Quantity, &o.CustomerName, &o.Location, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// UpdateStatus cambia el estado de una orden.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id, status); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// Delete elimina una orden.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM orders WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// CountAll cuenta todas las órdenes.
func (r *OrderRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

// CountByStatus cuenta las órdenes en un estado dado.
func (r *OrderRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders by status: %w", err)
	}
	return count, nil
}
