package logistics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/scms-api/internal/domain"
	"github.com/jhoicas/scms-api/internal/domain/entity"
	domlogistics "github.com/jhoicas/scms-api/internal/domain/logistics"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

// RouteDetails resultado de CheapestRouteDetails: costo total mínimo y la
// secuencia de saltos elegida. Derivado, nunca se persiste.
type RouteDetails struct {
	Cost decimal.Decimal
	Hops []string
}

// RouteResolverUseCase resuelve costos de ruta y orígenes válidos sobre la
// tabla de rutas. Solo lectura; una lectura instantánea que quede obsoleta
// antes de ejecutar la transferencia es aceptable porque MoveProduct
// revalida la suficiencia dentro de su transacción.
type RouteResolverUseCase struct {
	routeRepo    repository.RouteRepository
	locationRepo repository.LocationRepository
}

// NewRouteResolverUseCase construye el caso de uso.
func NewRouteResolverUseCase(
	routeRepo repository.RouteRepository,
	locationRepo repository.LocationRepository,
) *RouteResolverUseCase {
	return &RouteResolverUseCase{routeRepo: routeRepo, locationRepo: locationRepo}
}

// RouteCost devuelve el costo de la arista directa origen→destino.
// Falla con ErrRouteNotFound si no existe arista para el par ordenado.
func (uc *RouteResolverUseCase) RouteCost(ctx context.Context, origin, destination string) (decimal.Decimal, error) {
	if origin == "" || destination == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	edge, err := uc.routeRepo.Get(ctx, origin, destination)
	if err != nil {
		return decimal.Zero, err
	}
	if edge == nil {
		return decimal.Zero, domain.ErrRouteNotFound
	}
	return edge.Cost, nil
}

// CheapestRouteDetails devuelve el costo total mínimo entre origen y destino
// considerando rutas multi-salto (Dijkstra sobre todas las aristas, costos no
// negativos) y la secuencia de saltos elegida. Falla con ErrRouteNotFound
// cuando el destino es inalcanzable.
func (uc *RouteResolverUseCase) CheapestRouteDetails(ctx context.Context, origin, destination string) (*RouteDetails, error) {
	if origin == "" || destination == "" {
		return nil, domain.ErrInvalidInput
	}
	edges, err := uc.routeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	path, ok := domlogistics.CheapestPath(edges, origin, destination)
	if !ok {
		return nil, domain.ErrRouteNotFound
	}
	return &RouteDetails{Cost: path.Cost, Hops: path.Hops}, nil
}

// ValidOrigins devuelve las ubicaciones con (a) arista hacia destination y
// (b) stock positivo del SKU. Slice vacío, nunca error, cuando ninguna
// califica.
func (uc *RouteResolverUseCase) ValidOrigins(ctx context.Context, destination, sku string) ([]entity.Location, error) {
	rows, err := uc.routeRepo.ListOriginsWithStock(ctx, destination, sku)
	if err != nil {
		return nil, err
	}
	origins := make([]entity.Location, 0, len(rows))
	for _, row := range rows {
		origins = append(origins, entity.Location{Name: row.Origin, Role: row.Role})
	}
	return origins, nil
}

// AllWarehouseLocations devuelve las ubicaciones con rol warehouse en orden
// alfabético estable.
func (uc *RouteResolverUseCase) AllWarehouseLocations(ctx context.Context) ([]entity.Location, error) {
	return uc.locationRepo.ListWarehouses(ctx)
}
