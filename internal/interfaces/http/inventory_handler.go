package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/scms-api/internal/application/dto"
	"github.com/jhoicas/scms-api/internal/application/logistics"
	"github.com/jhoicas/scms-api/internal/application/usecase"
)

// InventoryHandler maneja consultas y altas de inventario más el análisis
// disponible-vs-demanda.
type InventoryHandler struct {
	inventory *usecase.InventoryUseCase
	gap       *logistics.GapUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(inventory *usecase.InventoryUseCase, gap *logistics.GapUseCase) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, gap: gap}
}

// Add godoc
// @Summary      Sumar existencias de un SKU en una ubicación
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddInventoryRequest  true  "sku, location, quantity"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Add(c *fiber.Ctx) error {
	var in dto.AddInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.inventory.Add(c.Context(), in); err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "inventario registrado"})
}

// List godoc
// @Summary      Libro de existencias completo
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.StockEntryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	entries, err := h.inventory.List(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(entries), "inventory": entries})
}

// LowStock godoc
// @Summary      Existencias bajo el umbral de reorden
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.LowStockResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	rows, err := h.inventory.LowStock(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "low_stock": rows})
}

// Availability godoc
// @Summary      Disponible total del SKU y delta contra la demanda
// @Tags         inventory
// @Produce      json
// @Param        sku     path   string  true   "SKU"
// @Param        demand  query  int     false  "Demanda pronosticada (0 si se omite)"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/{sku}/availability [get]
func (h *InventoryHandler) Availability(c *fiber.Ctx) error {
	sku := c.Params("sku")
	demand, err := strconv.ParseInt(c.Query("demand", "0"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "demand debe ser un entero"})
	}
	gap, err := h.gap.Analyze(c.Context(), sku, demand)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.AvailabilityResponse{
		SKU:       gap.SKU,
		Available: gap.Available,
		Demand:    gap.Demand,
		Gap:       gap.Gap,
	})
}
