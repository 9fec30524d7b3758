package logistics

import (
	"context"

	"github.com/jhoicas/scms-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el débito en origen, el crédito
// en destino y el registro de costo se apliquen como una unidad atómica.
// La implementación reintenta ante fallos de serialización y devuelve
// domain.ErrConsistencyConflict al agotar los reintentos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		costRepo repository.CostRecordRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
