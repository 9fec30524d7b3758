package repository

import (
	"context"

	"github.com/jhoicas/scms-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia de usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername devuelve nil, nil cuando el usuario no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
