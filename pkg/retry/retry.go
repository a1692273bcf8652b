// Package retry implementa el único reintento permitido: releer una lista justo
// después de una escritura cuando el store todavía no la refleja.
package retry

import (
	"context"
	"time"
)

// Valores por defecto: 3 intentos, 1 s entre intentos.
const (
	DefaultMaxAttempts = 3
	DefaultDelay       = time.Second
)

// Policy reintento acotado con demora fija. Sin backoff.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Default política por defecto.
func Default() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, Delay: DefaultDelay}
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// FetchAfterMutation ejecuta fetch y, mientras el resultado sea una lista vacía,
// lo repite hasta MaxAttempts veces en total esperando Delay entre intentos.
// Los errores no se reintentan: se devuelven de inmediato. Si se agotan los intentos
// se acepta la lista vacía como resultado final. La espera respeta ctx.
func FetchAfterMutation[T any](ctx context.Context, p Policy, fetch func(context.Context) ([]T, error)) ([]T, error) {
	n := p.attempts()
	var last []T
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := sleep(ctx, p.Delay); err != nil {
				return last, err
			}
		}
		items, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			return items, nil
		}
		last = items
	}
	return last, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
