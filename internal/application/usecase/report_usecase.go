package usecase

import (
	"context"

	"github.com/jhoicas/scms-api/internal/application/dto"
	"github.com/jhoicas/scms-api/internal/domain/entity"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

// ReportUseCase arma el resumen operativo (datos estructurados, sin formato
// de texto: la presentación es del cliente).
type ReportUseCase struct {
	orderRepo repository.OrderRepository
	stockRepo repository.StockRepository
	costRepo  repository.CostRecordRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	orderRepo repository.OrderRepository,
	stockRepo repository.StockRepository,
	costRepo repository.CostRecordRepository,
) *ReportUseCase {
	return &ReportUseCase{
		orderRepo: orderRepo,
		stockRepo: stockRepo,
		costRepo:  costRepo,
	}
}

// Summary devuelve totales de órdenes, ítems en stock crítico y costo
// logístico acumulado.
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.SummaryReportResponse, error) {
	totalOrders, err := uc.orderRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	processed, err := uc.orderRepo.CountByStatus(ctx, entity.OrderStatusProcessed)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.stockRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	totalCost, err := uc.costRepo.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryReportResponse{
		TotalOrders:        totalOrders,
		ProcessedOrders:    processed,
		LowStockItems:      int64(len(lowStock)),
		TotalLogisticsCost: totalCost,
	}, nil
}
