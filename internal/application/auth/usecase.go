package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
	"github.com/jhoicas/Cotizador-api/internal/domain/session"
)

// AuthUseCase login y registro. Las credenciales las verifica el store remoto;
// aquí solo se validan los campos y se emite la sesión con el token recibido.
type AuthUseCase struct {
	gateway repository.AuthGateway
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway repository.AuthGateway) *AuthUseCase {
	return &AuthUseCase{gateway: gateway}
}

// Login verifica email/password contra el store. Si s no es nil, la sesión pasa a Issued.
func (uc *AuthUseCase) Login(ctx context.Context, in entity.Credentials, s *session.Session) (*entity.AuthToken, error) {
	return uc.exchange(ctx, in, s, uc.gateway.Login)
}

// Register crea el usuario en el store y deja la sesión emitida.
func (uc *AuthUseCase) Register(ctx context.Context, in entity.Credentials, s *session.Session) (*entity.AuthToken, error) {
	return uc.exchange(ctx, in, s, uc.gateway.Register)
}

// Logout invalida la sesión y borra la credencial guardada. Devuelve error si la
// credencial persistida no se pudo borrar.
func (uc *AuthUseCase) Logout(s *session.Session) error {
	if s == nil {
		return nil
	}
	return s.Invalidate()
}

func (uc *AuthUseCase) exchange(
	ctx context.Context,
	in entity.Credentials,
	s *session.Session,
	call func(context.Context, entity.Credentials) (*entity.AuthToken, error),
) (*entity.AuthToken, error) {
	in.Email = strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: la contraseña es obligatoria", domain.ErrInvalidInput)
	}
	tok, err := call(ctx, in)
	if err != nil {
		return nil, err
	}
	if s != nil {
		if err := s.Issue(tok.Token); err != nil {
			return nil, err
		}
	}
	return tok, nil
}
