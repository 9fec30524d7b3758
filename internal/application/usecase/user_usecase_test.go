package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/scms-api/internal/application/dto"
	"github.com/jhoicas/scms-api/internal/domain"
	"github.com/jhoicas/scms-api/internal/domain/entity"
)

func TestUserCreate_HasheaLaContrasena(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateUserRequest{Username: "operador", Password: "secreto-muy-largo"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, created.Role, "rol por defecto")

	stored, err := repo.GetByUsername(ctx, "operador")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto-muy-largo", stored.PasswordHash, "nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto-muy-largo")))
}

func TestUserCreate_Precondiciones(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateUserRequest{Username: "", Password: "secreto-muy-largo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "operador", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "contraseña mínima de 8 caracteres")

	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "operador", Password: "secreto-muy-largo", Role: "SuperDios"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateUserRequest{Username: "operador", Password: "secreto-muy-largo"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "operador", Password: "otra-contraseña"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
