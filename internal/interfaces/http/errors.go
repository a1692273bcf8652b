package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/restclient"
)

// LoginPath destino de la redirección cuando la sesión deja de ser válida.
const LoginPath = "/login"

// Códigos de error de la API.
const (
	CodeSessionExpired     = "SESSION_EXPIRED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeValidation         = "VALIDATION"
	CodeInvalidBody        = "INVALID_BODY"
	CodeNotFound           = "NOT_FOUND"
	CodeServerError        = "SERVER_ERROR"
	CodeStoreError         = "STORE_ERROR"
	CodeLastLineItem       = "LAST_LINE_ITEM"
	CodeInternal           = "INTERNAL"
)

// sessionExpired 401 con redirección al login.
func sessionExpired(c *fiber.Ctx, msg string) error {
	c.Set(fiber.HeaderLocation, LoginPath)
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeSessionExpired, Message: msg})
}

// writeAuthError en login/registro un 401 significa credenciales rechazadas,
// no una sesión vencida: sin Location y con el mensaje del store.
func writeAuthError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		msg := restclient.Message(err)
		if msg == restclient.FallbackMessage {
			msg = "credenciales inválidas"
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeInvalidCredentials, Message: msg})
	}
	return writeError(c, err)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}

// writeError traduce errores de casos de uso y del store a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var verr *quotation.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    CodeValidation,
			Message: "el borrador tiene campos inválidos",
			Fields:  verr.Fields,
		})
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		return sessionExpired(c, "sesión expirada, vuelva a iniciar sesión")
	}
	if errors.Is(err, restclient.ErrTransport) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: CodeServerError, Message: restclient.Message(err)})
	}
	var apiErr *restclient.APIError
	if errors.As(err, &apiErr) {
		code := CodeStoreError
		if apiErr.Status == fiber.StatusNotFound {
			code = CodeNotFound
		}
		return c.Status(apiErr.Status).JSON(dto.ErrorResponse{Code: code, Message: restclient.Message(err)})
	}
	switch {
	case errors.Is(err, domain.ErrLastLineItem):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeLastLineItem, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: err.Error()})
}
