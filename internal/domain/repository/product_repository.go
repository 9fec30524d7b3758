package repository

import (
	"context"

	"github.com/jhoicas/scms-api/internal/domain/entity"
)

// ProductRepository define el puerto CRUD para productos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetBySKU devuelve nil, nil cuando el producto no existe.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, sku string) error
}
