package screen

import (
	"context"
	"sync"
)

// Identifiable registro con id asignado por el store.
type Identifiable interface {
	RecordID() string
}

// Ticket identifica una carga. Solo la carga más reciente puede aplicar su resultado.
type Ticket uint64

// ListScreen lista + banner de error + estado de vista. Las respuestas que llegan
// después de cerrar la pantalla o de iniciar otra carga se descartan.
type ListScreen[R Identifiable, D any] struct {
	mu        sync.Mutex
	items     []R
	errMsg    string
	view      ViewState[R, D]
	gen       uint64
	alive     bool
	messageOf func(error) string
}

// NewListScreen crea la pantalla activa. messageOf traduce errores al texto del banner.
func NewListScreen[R Identifiable, D any](messageOf func(error) string) *ListScreen[R, D] {
	if messageOf == nil {
		messageOf = func(err error) string { return err.Error() }
	}
	return &ListScreen[R, D]{alive: true, messageOf: messageOf}
}

// BeginLoad abre una carga e invalida las anteriores.
func (s *ListScreen[R, D]) BeginLoad() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return Ticket(s.gen)
}

// FinishLoad aplica el resultado si el ticket sigue vigente y la pantalla está viva.
// Un error deja la lista anterior y muestra el banner. Devuelve si se aplicó.
func (s *ListScreen[R, D]) FinishLoad(t Ticket, items []R, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.alive || uint64(t) != s.gen {
		return false
	}
	if err != nil {
		s.errMsg = s.messageOf(err)
		return true
	}
	s.items = append([]R(nil), items...)
	s.errMsg = ""
	return true
}

// Load BeginLoad + fetch + FinishLoad.
func (s *ListScreen[R, D]) Load(ctx context.Context, fetch func(context.Context) ([]R, error)) bool {
	t := s.BeginLoad()
	items, err := fetch(ctx)
	return s.FinishLoad(t, items, err)
}

// Close la pantalla deja de aceptar resultados (navegación fuera).
func (s *ListScreen[R, D]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alive = false
	s.view = ClosedView[R, D]()
}

// Alive indica si la pantalla sigue activa.
func (s *ListScreen[R, D]) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alive
}

// Items copia de la lista actual.
func (s *ListScreen[R, D]) Items() []R {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]R(nil), s.items...)
}

// Find busca un registro por id en la lista cargada.
func (s *ListScreen[R, D]) Find(id string) (R, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero R
	return zero, false
}

// Error texto del banner; vacío si no hay error.
func (s *ListScreen[R, D]) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// SetError muestra un error de una acción (guardar, borrar) sin tocar la lista.
func (s *ListScreen[R, D]) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.errMsg = ""
		return
	}
	s.errMsg = s.messageOf(err)
}

// View estado de vista actual.
func (s *ListScreen[R, D]) View() ViewState[R, D] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Open pasa a Viewing(r).
func (s *ListScreen[R, D]) Open(r R) {
	s.setView(ViewingView[R, D](r))
}

// Edit pasa a Editing(d).
func (s *ListScreen[R, D]) Edit(d D) {
	s.setView(EditingView[R, D](d))
}

// Dismiss cierra el modal.
func (s *ListScreen[R, D]) Dismiss() {
	s.setView(ClosedView[R, D]())
}

func (s *ListScreen[R, D]) setView(v ViewState[R, D]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.alive {
		return
	}
	s.view = v
}

// Upsert reemplaza el registro con el mismo id (tras un PUT) o lo agrega (tras un POST).
func (s *ListScreen[R, D]) Upsert(r R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].RecordID() == r.RecordID() {
			s.items[i] = r
			return
		}
	}
	s.items = append(s.items, r)
}

// Remove quita el registro tras un DELETE. Si estaba abierto, el modal se cierra.
func (s *ListScreen[R, D]) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].RecordID() == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			break
		}
	}
	if r, ok := s.view.Record(); ok && r.RecordID() == id {
		s.view = ClosedView[R, D]()
	}
}
