package repository

import (
	"context"

	"github.com/jhoicas/scms-api/internal/domain/entity"
)

// OrderRepository define el puerto CRUD para órdenes de cliente.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve nil, nil cuando la orden no existe.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByCustomer(ctx context.Context, customerName string) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
