package restclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// Collection repositorio genérico sobre /api/{resource}.
type Collection[T any] struct {
	client   *Client
	resource string
}

var _ repository.RecordRepository[struct{}] = (*Collection[struct{}])(nil)

// NewCollection crea el repositorio de un recurso (customers, quotations, ...).
func NewCollection[T any](client *Client, resource string) *Collection[T] {
	return &Collection[T]{client: client, resource: resource}
}

// List GET /api/{resource}. Un cuerpo null se devuelve como lista vacía.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := c.client.Do(ctx, http.MethodGet, resourcePath(c.resource), nil, &out); err != nil {
		return nil, fmt.Errorf("listar %s: %w", c.resource, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// GetByID GET /api/{resource}/{id}.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var out T
	if err := c.client.Do(ctx, http.MethodGet, resourcePath(c.resource, id), nil, &out); err != nil {
		return nil, fmt.Errorf("obtener %s %s: %w", c.resource, id, err)
	}
	return &out, nil
}

// Create POST /api/{resource}; devuelve el registro creado por el store.
func (c *Collection[T]) Create(ctx context.Context, record *T) (*T, error) {
	var out T
	if err := c.client.Do(ctx, http.MethodPost, resourcePath(c.resource), record, &out); err != nil {
		return nil, fmt.Errorf("crear %s: %w", c.resource, err)
	}
	return &out, nil
}

// Update PUT /api/{resource}/{id}; devuelve el registro actualizado.
func (c *Collection[T]) Update(ctx context.Context, id string, record *T) (*T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var out T
	if err := c.client.Do(ctx, http.MethodPut, resourcePath(c.resource, id), record, &out); err != nil {
		return nil, fmt.Errorf("actualizar %s %s: %w", c.resource, id, err)
	}
	return &out, nil
}

// Delete DELETE /api/{resource}/{id}. No requiere cuerpo de respuesta.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := c.client.Do(ctx, http.MethodDelete, resourcePath(c.resource, id), nil, nil); err != nil {
		return fmt.Errorf("eliminar %s %s: %w", c.resource, id, err)
	}
	return nil
}

func checkID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id vacío", domain.ErrInvalidInput)
	}
	return nil
}
