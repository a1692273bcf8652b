// Package session modela la credencial del usuario frente al store remoto.
//
// Ciclo de vida: Absent -> Issued (login o registro) -> Invalidated (401 o logout).
// La sesión viaja explícitamente en el context.Context de cada llamada; no hay
// estado global.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Cotizador-api/internal/domain"
)

// State estado del ciclo de vida de la credencial.
type State int

const (
	Absent State = iota
	Issued
	Invalidated
)

func (s State) String() string {
	switch s {
	case Issued:
		return "issued"
	case Invalidated:
		return "invalidated"
	default:
		return "absent"
	}
}

// Store caché persistente de la credencial (archivo en la CLI, nada en el gateway).
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// ErrClearFailed no se pudo borrar la credencial persistida; el próximo Restore la
// recuperaría.
var ErrClearFailed = errors.New("session: no se pudo borrar la credencial guardada")

// ExpiryFunc indica si un token ya venció antes de enviarlo.
type ExpiryFunc func(token string, now time.Time) bool

// Option configura una Session.
type Option func(*Session)

// WithStore persiste la credencial emitida y la borra al invalidar.
func WithStore(st Store) Option { return func(s *Session) { s.store = st } }

// WithRedirect registra el gancho de redirección al login. Se dispara una sola vez
// por credencial emitida.
func WithRedirect(fn func()) Option { return func(s *Session) { s.redirect = fn } }

// WithExpiry registra el chequeo local de vencimiento.
func WithExpiry(fn ExpiryFunc) Option { return func(s *Session) { s.expired = fn } }

// WithClock reemplaza time.Now (pruebas).
func WithClock(now func() time.Time) Option { return func(s *Session) { s.now = now } }

// Session credencial bearer y su estado. Segura para uso concurrente.
type Session struct {
	mu       sync.Mutex
	token    string
	state    State
	fired    bool
	store    Store
	redirect func()
	expired  ExpiryFunc
	now      func() time.Time
}

// New crea una sesión en estado Absent.
func New(opts ...Option) *Session {
	s := &Session{now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Restore intenta recuperar la credencial del Store. Sin credencial guardada queda Absent.
func (s *Session) Restore() error {
	if s.store == nil {
		return nil
	}
	tok, err := s.store.Load()
	if err != nil {
		return err
	}
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
	s.state = Issued
	s.fired = false
	return nil
}

// Issue registra una credencial recién emitida (login o registro) y la persiste.
func (s *Session) Issue(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ErrUnauthorized
	}
	s.mu.Lock()
	s.token = token
	s.state = Issued
	s.fired = false
	s.mu.Unlock()
	if s.store != nil {
		return s.store.Save(token)
	}
	return nil
}

// Token devuelve la credencial vigente. Si falta o venció, invalida la sesión
// y devuelve domain.ErrUnauthorized.
func (s *Session) Token() (string, error) {
	s.mu.Lock()
	tok, st := s.token, s.state
	s.mu.Unlock()
	if st != Issued || tok == "" || (s.expired != nil && s.expired(tok, s.now())) {
		if err := s.Invalidate(); err != nil {
			return "", errors.Join(domain.ErrUnauthorized, err)
		}
		return "", domain.ErrUnauthorized
	}
	return tok, nil
}

// Invalidate descarta la credencial en memoria y en el Store y dispara la redirección.
// Es idempotente: llamadas repetidas (p. ej. varias respuestas 401 en paralelo) no
// vuelven a redirigir. Devuelve el error del Store si no pudo borrar la credencial
// guardada; la sesión en memoria queda invalidada igual.
func (s *Session) Invalidate() error {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		return nil
	}
	s.fired = true
	s.token = ""
	s.state = Invalidated
	redirect, store := s.redirect, s.store
	s.mu.Unlock()

	var err error
	if store != nil {
		if cerr := store.Clear(); cerr != nil {
			err = fmt.Errorf("%w: %w", ErrClearFailed, cerr)
		}
	}
	if redirect != nil {
		redirect()
	}
	return err
}

// State estado actual.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

type ctxKey struct{}

// NewContext adjunta la sesión al contexto.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext recupera la sesión del contexto.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
