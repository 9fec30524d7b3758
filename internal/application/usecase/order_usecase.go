package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/scms-api/internal/application/dto"
	"github.com/jhoicas/scms-api/internal/domain"
	"github.com/jhoicas/scms-api/internal/domain/entity"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

// OrderUseCase casos de uso CRUD para órdenes de cliente. El despacho físico
// (movimiento de stock) es del ejecutor de transferencias.
type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// Place crea una orden en estado Pending.
func (uc *OrderUseCase) Place(ctx context.Context, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if in.SKU == "" || in.CustomerName == "" || in.Location == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrUnknownSku
	}
	location, err := uc.locationRepo.GetByName(ctx, in.Location)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrUnknownLocation
	}
	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Quantity:     in.Quantity,
		CustomerName: in.CustomerName,
		Location:     in.Location,
		Status:       entity.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// ListByCustomer lista las órdenes de un cliente.
func (uc *OrderUseCase) ListByCustomer(ctx context.Context, customerName string) ([]*dto.OrderResponse, error) {
	if customerName == "" {
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.orderRepo.ListByCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}
	return out, nil
}

// UpdateStatus cambia el estado de una orden existente.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	switch status {
	case entity.OrderStatusPending, entity.OrderStatusProcessed, entity.OrderStatusShipped:
	default:
		return domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateStatus(ctx, id, status)
}

// Delete elimina una orden.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(ctx, id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:           o.ID,
		SKU:          o.SKU,
		Quantity:     o.Quantity,
		CustomerName: o.CustomerName,
		Location:     o.Location,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
