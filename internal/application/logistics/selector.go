package logistics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/scms-api/internal/domain/repository"
)

// OriginSuggestion es el origen factible más barato para abastecer un destino.
// Derivado y transitorio, nunca se persiste.
type OriginSuggestion struct {
	Origin            string
	Cost              decimal.Decimal
	AvailableQuantity int64
}

// SelectorUseCase elige el origen factible de menor costo para un SKU y un
// destino, cruzando rutas válidas con el stock disponible.
type SelectorUseCase struct {
	routeRepo repository.RouteRepository
}

// NewSelectorUseCase construye el caso de uso.
func NewSelectorUseCase(routeRepo repository.RouteRepository) *SelectorUseCase {
	return &SelectorUseCase{routeRepo: routeRepo}
}

// SuggestCheapestOrigin devuelve el origen con arista hacia destination y
// stock >= 1 del SKU de menor costo. Empates: mayor cantidad disponible y
// luego nombre de origen ascendente. Devuelve nil, nil cuando ningún origen
// califica; la ausencia de origen factible es un resultado normal, no un
// error. La sugerencia puede quedar obsoleta antes de que el caller actúe:
// MoveProduct revalida la suficiencia de forma autoritativa.
func (uc *SelectorUseCase) SuggestCheapestOrigin(ctx context.Context, sku, destination string) (*OriginSuggestion, error) {
	candidates, err := uc.routeRepo.ListOriginsWithStock(ctx, destination, sku)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if cmp := a.Cost.Cmp(b.Cost); cmp != 0 {
			return cmp < 0
		}
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Origin < b.Origin
	})

	best := candidates[0]
	return &OriginSuggestion{
		Origin:            best.Origin,
		Cost:              best.Cost,
		AvailableQuantity: best.Quantity,
	}, nil
}
