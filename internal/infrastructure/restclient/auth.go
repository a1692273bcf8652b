package restclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.AuthGateway = (*AuthClient)(nil)

// AuthClient login y registro contra /api/auth.
type AuthClient struct {
	client *Client
}

// NewAuthClient construye el cliente de autenticación.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{client: c}
}

// Login POST /api/auth/login.
func (a *AuthClient) Login(ctx context.Context, cred entity.Credentials) (*entity.AuthToken, error) {
	return a.exchange(ctx, "login", cred)
}

// Register POST /api/auth/register.
func (a *AuthClient) Register(ctx context.Context, cred entity.Credentials) (*entity.AuthToken, error) {
	return a.exchange(ctx, "register", cred)
}

func (a *AuthClient) exchange(ctx context.Context, action string, cred entity.Credentials) (*entity.AuthToken, error) {
	var out entity.AuthToken
	if err := a.client.DoAnonymous(ctx, http.MethodPost, resourcePath("auth", action), cred, &out); err != nil {
		return nil, fmt.Errorf("auth %s: %w", action, err)
	}
	if strings.TrimSpace(out.Token) == "" {
		return nil, fmt.Errorf("auth %s: %w: el store no devolvió token", action, domain.ErrUnauthorized)
	}
	return &out, nil
}
