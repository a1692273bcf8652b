package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/auth"
	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/pkg/jwt"
)

// AuthHandler maneja registro y login contra el store remoto.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      201   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	tok, err := h.uc.Register(requestContext(c), entity.Credentials{Email: in.Email, Password: in.Password}, nil)
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(loginResponse(tok))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	tok, err := h.uc.Login(requestContext(c), entity.Credentials{Email: in.Email, Password: in.Password}, nil)
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.JSON(loginResponse(tok))
}

func loginResponse(tok *entity.AuthToken) dto.LoginResponse {
	out := dto.LoginResponse{Token: tok.Token}
	if exp, ok := jwt.ExpiresAt(tok.Token); ok {
		out.ExpiresAt = &exp
	}
	return out
}
