package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/scms-api/internal/application/dto"
	"github.com/jhoicas/scms-api/internal/application/logistics"
)

// LogisticsHandler maneja las peticiones HTTP del motor logístico: costos de
// ruta, orígenes válidos, sugerencia de origen y transferencias.
type LogisticsHandler struct {
	resolver *logistics.RouteResolverUseCase
	selector *logistics.SelectorUseCase
	transfer *logistics.TransferUseCase
}

// NewLogisticsHandler construye el handler.
func NewLogisticsHandler(
	resolver *logistics.RouteResolverUseCase,
	selector *logistics.SelectorUseCase,
	transfer *logistics.TransferUseCase,
) *LogisticsHandler {
	return &LogisticsHandler{resolver: resolver, selector: selector, transfer: transfer}
}

// RouteCost godoc
// @Summary      Costo de la ruta directa origen→destino
// @Tags         logistics
// @Produce      json
// @Param        origin       query  string  true  "Ubicación origen"
// @Param        destination  query  string  true  "Ubicación destino"
// @Success      200  {object}  dto.RouteCostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/logistics/route-cost [get]
func (h *LogisticsHandler) RouteCost(c *fiber.Ctx) error {
	origin := c.Query("origin")
	destination := c.Query("destination")
	cost, err := h.resolver.RouteCost(c.Context(), origin, destination)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.RouteCostResponse{Origin: origin, Destination: destination, Cost: cost})
}

// CheapestRoute godoc
// @Summary      Ruta de costo mínimo (multi-salto) origen→destino
// @Tags         logistics
// @Produce      json
// @Param        origin       query  string  true  "Ubicación origen"
// @Param        destination  query  string  true  "Ubicación destino"
// @Success      200  {object}  dto.RouteDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/logistics/cheapest-route [get]
func (h *LogisticsHandler) CheapestRoute(c *fiber.Ctx) error {
	details, err := h.resolver.CheapestRouteDetails(c.Context(), c.Query("origin"), c.Query("destination"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.RouteDetailsResponse{Cost: details.Cost, Hops: details.Hops})
}

// ValidOrigins godoc
// @Summary      Orígenes con ruta al destino y stock del SKU
// @Tags         logistics
// @Produce      json
// @Param        destination  query  string  true  "Ubicación destino"
// @Param        sku          query  string  true  "SKU"
// @Success      200  {array}  dto.ValidOriginResponse
// @Router       /api/logistics/origins [get]
func (h *LogisticsHandler) ValidOrigins(c *fiber.Ctx) error {
	origins, err := h.resolver.ValidOrigins(c.Context(), c.Query("destination"), c.Query("sku"))
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.ValidOriginResponse, 0, len(origins))
	for _, origin := range origins {
		out = append(out, dto.ValidOriginResponse{Name: origin.Name, Role: origin.Role})
	}
	return c.JSON(fiber.Map{"total": len(out), "origins": out})
}

// SuggestOrigin godoc
// @Summary      Origen factible más barato para un SKU y destino
// @Description  204 cuando ningún origen tiene ruta y stock a la vez; la
//               ausencia de origen factible no es un error.
// @Tags         logistics
// @Produce      json
// @Param        sku          query  string  true  "SKU"
// @Param        destination  query  string  true  "Ubicación destino"
// @Success      200  {object}  dto.OriginSuggestionResponse
// @Success      204  "Sin origen factible"
// @Router       /api/logistics/suggest-origin [get]
func (h *LogisticsHandler) SuggestOrigin(c *fiber.Ctx) error {
	suggestion, err := h.selector.SuggestCheapestOrigin(c.Context(), c.Query("sku"), c.Query("destination"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if suggestion == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(dto.OriginSuggestionResponse{
		Origin:            suggestion.Origin,
		Cost:              suggestion.Cost,
		AvailableQuantity: suggestion.AvailableQuantity,
	})
}

// Transfer godoc
// @Summary      Mover stock entre ubicaciones
// @Description  Si origin viene vacío, primero se busca el origen factible
//               más barato; sin origen factible responde 409.
// @Tags         logistics
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "sku, origin (opcional), destination, quantity, unit_cost"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/logistics/transfers [post]
func (h *LogisticsHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	origin := in.Origin
	unitCost := in.UnitCost
	if origin == "" {
		suggestion, err := h.selector.SuggestCheapestOrigin(c.Context(), in.SKU, in.Destination)
		if err != nil {
			return respondDomainError(c, err)
		}
		if suggestion == nil {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_FEASIBLE_ORIGIN", Message: "ningún origen con ruta y stock disponible"})
		}
		origin = suggestion.Origin
		unitCost = suggestion.Cost
	}
	if err := h.transfer.MoveProduct(c.Context(), in.SKU, origin, in.Destination, in.Quantity, unitCost); err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "transferencia aplicada", "origin": origin})
}

// Warehouses godoc
// @Summary      Bodegas en orden alfabético estable
// @Tags         logistics
// @Produce      json
// @Success      200  {array}  dto.ValidOriginResponse
// @Router       /api/locations/warehouses [get]
func (h *LogisticsHandler) Warehouses(c *fiber.Ctx) error {
	warehouses, err := h.resolver.AllWarehouseLocations(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.ValidOriginResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, dto.ValidOriginResponse{Name: w.Name, Role: w.Role})
	}
	return c.JSON(fiber.Map{"total": len(out), "warehouses": out})
}
