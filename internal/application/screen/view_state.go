// Package screen modela el estado de una pantalla de listado: la lista, el banner
// de error y un estado de vista explícito en lugar de banderas sueltas de modal.
package screen

// Mode variante activa del estado de vista.
type Mode int

const (
	Closed Mode = iota
	Viewing
	Editing
)

func (m Mode) String() string {
	switch m {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	default:
		return "closed"
	}
}

// ViewState {Closed, Viewing(record), Editing(draft)}. Solo el dato de la variante
// activa es accesible, así que no existen combinaciones imposibles.
type ViewState[R, D any] struct {
	mode   Mode
	record R
	draft  D
}

// ClosedView estado sin modal abierto.
func ClosedView[R, D any]() ViewState[R, D] { return ViewState[R, D]{} }

// ViewingView muestra un registro.
func ViewingView[R, D any](r R) ViewState[R, D] {
	return ViewState[R, D]{mode: Viewing, record: r}
}

// EditingView edita un borrador.
func EditingView[R, D any](d D) ViewState[R, D] {
	return ViewState[R, D]{mode: Editing, draft: d}
}

// Mode variante actual.
func (v ViewState[R, D]) Mode() Mode { return v.mode }

// Record registro en modo Viewing.
func (v ViewState[R, D]) Record() (R, bool) {
	if v.mode != Viewing {
		var zero R
		return zero, false
	}
	return v.record, true
}

// Draft borrador en modo Editing.
func (v ViewState[R, D]) Draft() (D, bool) {
	if v.mode != Editing {
		var zero D
		return zero, false
	}
	return v.draft, true
}
