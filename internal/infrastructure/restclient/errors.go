package restclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/Cotizador-api/internal/domain"
)

// ErrTransport la llamada no llegó a obtener respuesta (red caída, DNS, timeout).
var ErrTransport = errors.New("store inalcanzable")

// TransportMessage texto presentable de una falla de transporte.
const TransportMessage = "Server error"

// FallbackMessage texto cuando el store responde con error sin mensaje.
const FallbackMessage = "Unknown error"

// APIError respuesta no-2xx del store.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("store HTTP %d: %s", e.Status, e.Message)
}

// Is permite errors.Is(err, domain.ErrNotFound) y errors.Is(err, domain.ErrUnauthorized).
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.Status == http.StatusForbidden
	}
	return false
}

// Message devuelve el texto presentable de un error del store: el mensaje del
// servidor, TransportMessage para fallas de transporte o el texto genérico.
func Message(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrTransport):
		return TransportMessage
	default:
		return FallbackMessage
	}
}
