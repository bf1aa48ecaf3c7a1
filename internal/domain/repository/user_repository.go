package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail devuelve (nil, nil) si el email no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
