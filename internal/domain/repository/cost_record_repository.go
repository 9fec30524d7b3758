package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/scms-api/internal/domain/entity"
)

// CostRecordRepository define el puerto sobre el libro de costos logísticos.
// Los registros se agregan dentro de la misma transacción de la transferencia.
type CostRecordRepository interface {
	Append(ctx context.Context, record *entity.CostRecord) error
	// TotalAmount suma el monto de todos los registros (para el reporte).
	TotalAmount(ctx context.Context) (decimal.Decimal, error)
}
