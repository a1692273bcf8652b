package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// RecordService CRUD de un recurso del store (clientes, leads, gastos, pagos).
type RecordService[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, in T) (*T, error)
	Update(ctx context.Context, id string, in T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// RecordHandler handler CRUD genérico sobre un RecordService.
type RecordHandler[T any] struct {
	svc RecordService[T]
}

// NewRecordHandler construye el handler.
func NewRecordHandler[T any](svc RecordService[T]) *RecordHandler[T] {
	return &RecordHandler[T]{svc: svc}
}

// Mount registra GET/POST en "/" y GET/PUT/DELETE en "/:id".
func (h *RecordHandler[T]) Mount(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

// List GET /
func (h *RecordHandler[T]) List(c *fiber.Ctx) error {
	list, err := h.svc.List(requestContext(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /:id
func (h *RecordHandler[T]) GetByID(c *fiber.Ctx) error {
	rec, err := h.svc.GetByID(requestContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rec)
}

// Create POST /
func (h *RecordHandler[T]) Create(c *fiber.Ctx) error {
	var in T
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	rec, err := h.svc.Create(requestContext(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// Update PUT /:id
func (h *RecordHandler[T]) Update(c *fiber.Ctx) error {
	var in T
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	rec, err := h.svc.Update(requestContext(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rec)
}

// Delete DELETE /:id
func (h *RecordHandler[T]) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(requestContext(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
