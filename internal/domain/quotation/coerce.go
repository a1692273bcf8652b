package quotation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts formatos aceptados para fechas del formulario (input date e ISO).
var dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// ParseAmount convierte un valor de formulario a decimal. Devuelve ok=false si está
// vacío o no es numérico; en ese caso el valor es cero.
func ParseAmount(v FormValue) (decimal.Decimal, bool) {
	s := v.String()
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseRate igual que ParseAmount pero un valor no numérico cuenta como 0%.
func ParseRate(v FormValue) decimal.Decimal {
	d, _ := ParseAmount(v)
	return d
}

// ParseDate normaliza la fecha del formulario a medianoche UTC. Con RFC 3339 se
// conserva el día del calendario local del valor, no el día en UTC.
func ParseDate(v FormValue) (time.Time, error) {
	s := v.String()
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return CalendarDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
}

// CalendarDate reduce t a su día de calendario (en su propia zona) a medianoche UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
