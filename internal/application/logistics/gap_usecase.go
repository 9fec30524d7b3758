package logistics

import (
	"context"

	"github.com/jhoicas/scms-api/internal/domain"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

// ForecastGap es la comparación disponible-vs-demanda para un SKU.
// Gap negativo significa que la demanda pronosticada supera el inventario.
type ForecastGap struct {
	SKU       string
	Available int64
	Demand    int64
	Gap       int64
}

// GapUseCase compara inventario disponible contra demanda pronosticada.
// Solo lee el libro de existencias; sin efectos secundarios.
type GapUseCase struct {
	stockRepo repository.StockRepository
}

// NewGapUseCase construye el caso de uso.
func NewGapUseCase(stockRepo repository.StockRepository) *GapUseCase {
	return &GapUseCase{stockRepo: stockRepo}
}

// AvailableInventory devuelve la suma de existencias del SKU en todas las
// ubicaciones.
func (uc *GapUseCase) AvailableInventory(ctx context.Context, sku string) (int64, error) {
	if sku == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.stockRepo.TotalBySKU(ctx, sku)
}

// Analyze devuelve el delta disponible-vs-demanda. La demanda llega con la
// petición; la persistencia de pronósticos es de un colaborador externo.
func (uc *GapUseCase) Analyze(ctx context.Context, sku string, demand int64) (*ForecastGap, error) {
	if demand < 0 {
		return nil, domain.ErrInvalidInput
	}
	available, err := uc.AvailableInventory(ctx, sku)
	if err != nil {
		return nil, err
	}
	return &ForecastGap{
		SKU:       sku,
		Available: available,
		Demand:    demand,
		Gap:       available - demand,
	}, nil
}
