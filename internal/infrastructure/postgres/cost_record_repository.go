package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/scms-api/internal/domain/entity"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

var _ repository.CostRecordRepository = (*CostRecordRepo)(nil)

// CostRecordRepo implementación sobre PostgreSQL (usable con pool o tx).
type CostRecordRepo struct {
	q Querier
}

// NewCostRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCostRecordRepository(q Querier) *CostRecordRepo {
	return &CostRecordRepo{q: q}
}

// Append persiste un registro de costo logístico.
func (r *CostRecordRepo) Append(ctx context.Context, record *entity.CostRecord) error {
	query := `
		INSERT INTO cost_ledger (id, sku, origin, destination, quantity, amount, order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	orderID := (*string)(nil)
	if record.OrderID != "" {
		orderID = &record.OrderID
	}
	_, err := r.q.Exec(ctx, query,
		record.ID, record.SKU, record.Origin, record.Destination,
		record.Quantity, record.Amount, orderID, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append cost record: %w", err)
	}
	return nil
}

// TotalAmount suma el monto de todos los registros del libro de costos.
func (r *CostRecordRepo) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM cost_ledger`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total cost ledger: %w", err)
	}
	return total, nil
}
