// Package restclient es el cliente del store REST remoto: adjunta la credencial
// bearer de la sesión, serializa JSON y traduce las respuestas no-2xx a errores.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/session"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

const maxResponseBytes = 10 << 20

// Client cliente HTTP del store. Seguro para uso concurrente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// New construye el cliente. baseURL sin el sufijo /api.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("restclient"),
	}
}

// ── Núcleo de la petición ─────────────────────────────────────────────────────

// Do ejecuta una llamada autenticada. La sesión se toma de ctx; sin sesión o sin
// credencial vigente devuelve domain.ErrUnauthorized sin tocar la red. Un 401
// invalida la sesión (y con ello dispara la redirección al login una sola vez).
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	token, err := sess.Token()
	if err != nil {
		if errors.Is(err, session.ErrClearFailed) {
			c.log.Error().Err(err).Str("path", path).Msg("credencial vencida sin borrar")
		}
		return err
	}
	err = c.send(ctx, method, path, token, in, out)
	if err != nil && isUnauthorized(err) {
		if cerr := sess.Invalidate(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("credencial rechazada sin borrar")
			return errors.Join(err, cerr)
		}
	}
	return err
}

// DoAnonymous llamada sin credencial (login y registro).
func (c *Client) DoAnonymous(ctx context.Context, method, path string, in, out any) error {
	return c.send(ctx, method, path, "", in, out)
}

func (c *Client) send(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("restclient: serializar cuerpo: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("restclient: crear request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", reqID).Msg("store inalcanzable")
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ErrTransport, ctx.Err())
		}
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", ErrTransport, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("request_id", reqID).
		Msg("store")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: serverMessage(raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("restclient: deserializar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

// serverMessage extrae {"message": ...} o {"error": ...}; si no hay, texto genérico.
func serverMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if m := strings.TrimSpace(payload.Message); m != "" {
			return m
		}
		if m := strings.TrimSpace(payload.Error); m != "" {
			return m
		}
	}
	return FallbackMessage
}

func isUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// resourcePath arma /api/{resource}[/{segmento}...] escapando cada segmento.
func resourcePath(resource string, segments ...string) string {
	var b strings.Builder
	b.WriteString("/api/")
	b.WriteString(resource)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
