package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/scms-api/internal/application/dto"
	"github.com/jhoicas/scms-api/internal/application/logistics"
	"github.com/jhoicas/scms-api/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP de órdenes, incluido el despacho
// físico vía el ejecutor de transferencias.
type OrderHandler struct {
	uc       *usecase.OrderUseCase
	selector *logistics.SelectorUseCase
	transfer *logistics.TransferUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(
	uc *usecase.OrderUseCase,
	selector *logistics.SelectorUseCase,
	transfer *logistics.TransferUseCase,
) *OrderHandler {
	return &OrderHandler{uc: uc, selector: selector, transfer: transfer}
}

// Place godoc
// @Summary      Crear orden de cliente
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "sku, quantity, customer_name, location"
// @Success      201  {object}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Place(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List godoc
// @Summary      Listar órdenes por cliente
// @Tags         orders
// @Produce      json
// @Param        customer  query  string  true  "Nombre del cliente"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.uc.ListByCustomer(c.Context(), c.Query("customer"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(orders), "orders": orders})
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una orden
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "status"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "estado actualizado"})
}

// Delete godoc
// @Summary      Eliminar orden
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      204  "Eliminada"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Dispatch godoc
// @Summary      Despachar una orden hacia su ubicación de entrega
// @Description  Mueve el stock de la orden desde el origen indicado (o el
//               origen factible más barato si viene vacío) hacia la ubicación
//               de la orden, registrando el costo asociado a la orden.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.DispatchOrderRequest  false  "origin opcional"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/dispatch [post]
func (h *OrderHandler) Dispatch(c *fiber.Ctx) error {
	var in dto.DispatchOrderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	order, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	origin := in.Origin
	if origin == "" {
		suggestion, err := h.selector.SuggestCheapestOrigin(c.Context(), order.SKU, order.Location)
		if err != nil {
			return respondDomainError(c, err)
		}
		if suggestion == nil {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_FEASIBLE_ORIGIN", Message: "ningún origen con ruta y stock disponible"})
		}
		origin = suggestion.Origin
	}
	if err := h.transfer.MoveOrderToCustomer(c.Context(), order.ID, order.SKU, order.Quantity, origin, order.Location); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "orden despachada", "origin": origin})
}
