package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/domain/session"
	"github.com/jhoicas/Cotizador-api/pkg/jwt"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

// AuthMiddleware toma el Bearer Token, abre una sesión por petición y la deja en el
// contexto de usuario de Fiber. Un token ausente, mal formado o vencido corta con 401
// sin llamar al store.
func AuthMiddleware(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return sessionExpired(c, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return sessionExpired(c, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return sessionExpired(c, "token vacío")
		}

		path := c.Path()
		s := session.New(
			session.WithExpiry(jwt.IsExpired),
			session.WithRedirect(func() {
				log.Debug().Str("path", path).Msg("sesión invalidada, redirigiendo al login")
			}),
		)
		if err := s.Issue(tokenString); err != nil {
			return sessionExpired(c, "token vacío")
		}
		if _, err := s.Token(); err != nil {
			return sessionExpired(c, "token expirado")
		}
		c.SetUserContext(session.NewContext(c.UserContext(), s))
		return c.Next()
	}
}

// GetSession devuelve la sesión de la petición (después del middleware de auth).
func GetSession(c *fiber.Ctx) *session.Session {
	s, _ := session.FromContext(c.UserContext())
	return s
}

// requestContext contexto de la petición con la sesión adjunta.
func requestContext(c *fiber.Ctx) context.Context {
	return c.UserContext()
}
