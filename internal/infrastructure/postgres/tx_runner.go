package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/scms-api/internal/application/logistics"
	"github.com/jhoicas/scms-api/internal/domain"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

// Ensure TxRunner implements logistics.TxRunner.
var _ logistics.TxRunner = (*TxRunner)(nil)

// Reintentos ante fallos de serialización antes de rendirse con
// ErrConsistencyConflict.
const txMaxRetries = 3

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. El débito,
// el crédito y el registro de costo de una transferencia comparten la misma
// tx, de modo que nunca se observa un movimiento aplicado a medias.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Ante fallo de serialización o deadlock reintenta la
// transacción completa hasta txMaxRetries veces.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	costRepo repository.CostRecordRepository,
	orderRepo repository.OrderRepository,
) error) error {
	var err error
	for attempt := 0; attempt < txMaxRetries; attempt++ {
		err = r.runOnce(ctx, fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return domain.ErrConsistencyConflict
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	costRepo repository.CostRecordRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockRepository(tx)
	costRepo := NewCostRecordRepository(tx)
	orderRepo := NewOrderRepository(tx)

	if err := fn(stockRepo, costRepo, orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
