package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
)

// PaymentHandler rutas derivadas de pagos (por nombre de cliente).
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CustomerNames GET /api/payments/customers
func (h *PaymentHandler) CustomerNames(c *fiber.Ctx) error {
	names, err := h.uc.CustomerNames(requestContext(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(names)
}

// QuotationsByCustomer GET /api/payments/quotations/:name
func (h *PaymentHandler) QuotationsByCustomer(c *fiber.Ctx) error {
	list, err := h.uc.QuotationsByCustomer(requestContext(c), nameParam(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// PaymentsByCustomer GET /api/payments/customer/:name
func (h *PaymentHandler) PaymentsByCustomer(c *fiber.Ctx) error {
	list, err := h.uc.PaymentsByCustomer(requestContext(c), nameParam(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

func nameParam(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
