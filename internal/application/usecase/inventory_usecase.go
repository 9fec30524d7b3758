package usecase

import (
	"context"

	"github.com/jhoicas/scms-api/internal/application/dto"
	"github.com/jhoicas/scms-api/internal/domain"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

// InventoryUseCase consulta y alta de inventario. Las transferencias entre
// ubicaciones NO pasan por aquí: son del ejecutor de transferencias.
type InventoryUseCase struct {
	stockRepo    repository.StockRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *InventoryUseCase {
	return &InventoryUseCase{
		stockRepo:    stockRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// Add suma quantity a la existencia del SKU en la ubicación (crea la fila si
// no existe). Entrada de mercancía, no un movimiento entre ubicaciones.
func (uc *InventoryUseCase) Add(ctx context.Context, in dto.AddInventoryRequest) error {
	if in.SKU == "" || in.Location == "" || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrUnknownSku
	}
	location, err := uc.locationRepo.GetByName(ctx, in.Location)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrUnknownLocation
	}
	return uc.stockRepo.AddQuantity(ctx, in.SKU, in.Location, in.Quantity)
}

// List devuelve todas las filas del libro de existencias.
func (uc *InventoryUseCase) List(ctx context.Context) ([]dto.StockEntryResponse, error) {
	entries, err := uc.stockRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.StockEntryResponse{
			SKU:      entry.SKU,
			Location: entry.Location,
			Quantity: entry.Quantity,
		})
	}
	return out, nil
}

// LowStock lista las filas bajo el umbral de reorden de su producto.
func (uc *InventoryUseCase) LowStock(ctx context.Context) ([]dto.LowStockResponse, error) {
	rows, err := uc.stockRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.LowStockResponse{
			SKU:              row.SKU,
			ProductName:      row.ProductName,
			Location:         row.Location,
			Quantity:         row.Quantity,
			ReorderThreshold: row.ReorderThreshold,
		})
	}
	return out, nil
}
