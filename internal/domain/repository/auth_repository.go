package repository

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// AuthGateway intercambio de credenciales contra el store (POST /api/auth/login|register).
type AuthGateway interface {
	Login(ctx context.Context, cred entity.Credentials) (*entity.AuthToken, error)
	Register(ctx context.Context, cred entity.Credentials) (*entity.AuthToken, error)
}
