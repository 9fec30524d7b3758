package dto

import "github.com/shopspring/decimal"

// TransferRequest body para POST /api/logistics/transfers.
// UnitCost es el costo unitario de transporte aplicado al registro de costos.
type TransferRequest struct {
	SKU         string          `json:"sku"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Quantity    int64           `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// RouteCostResponse respuesta de GET /api/logistics/route-cost.
type RouteCostResponse struct {
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Cost        decimal.Decimal `json:"cost"`
}

// RouteDetailsResponse respuesta de GET /api/logistics/cheapest-route.
type RouteDetailsResponse struct {
	Cost decimal.Decimal `json:"cost"`
	Hops []string        `json:"hops"`
}

// OriginSuggestionResponse respuesta de GET /api/logistics/suggest-origin.
type OriginSuggestionResponse struct {
	Origin            string          `json:"origin"`
	Cost              decimal.Decimal `json:"cost"`
	AvailableQuantity int64           `json:"available_quantity"`
}

// ValidOriginResponse elemento de GET /api/logistics/origins.
type ValidOriginResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// DispatchOrderRequest body para POST /api/orders/:id/dispatch.
// Origin vacío = buscar primero el origen factible más barato.
type DispatchOrderRequest struct {
	Origin string `json:"origin,omitempty"`
}
