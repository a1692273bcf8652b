package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/pkg/retry"
)

func TestFetchAfterMutation_ReintentaHastaVerElRegistro(t *testing.T) {
	calls := 0
	fetch := func(context.Context) ([]string, error) {
		calls++
		if calls < 3 {
			return nil, nil
		}
		return []string{"Q-001"}, nil
	}

	got, err := retry.FetchAfterMutation(context.Background(), retry.Policy{MaxAttempts: 3, Delay: time.Millisecond}, fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q-001"}, got)
	assert.Equal(t, 3, calls)
}

func TestFetchAfterMutation_AceptaVacioAlAgotar(t *testing.T) {
	calls := 0
	fetch := func(context.Context) ([]string, error) {
		calls++
		return []string{}, nil
	}

	got, err := retry.FetchAfterMutation(context.Background(), retry.Policy{MaxAttempts: 3, Delay: time.Millisecond}, fetch)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 3, calls, "exactamente MaxAttempts lecturas")
}

func TestFetchAfterMutation_ErroresNoSeReintentan(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	fetch := func(context.Context) ([]string, error) {
		calls++
		return nil, boom
	}

	_, err := retry.FetchAfterMutation(context.Background(), retry.Default(), fetch)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestFetchAfterMutation_PrimerIntentoConDatosNoEspera(t *testing.T) {
	start := time.Now()
	got, err := retry.FetchAfterMutation(context.Background(), retry.Policy{MaxAttempts: 3, Delay: time.Hour},
		func(context.Context) ([]int, error) { return []int{1}, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)
	assert.Less(t, time.Since(start), time.Second)
}

func TestFetchAfterMutation_CancelacionCortaLaEspera(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	fetch := func(context.Context) ([]string, error) {
		calls++
		cancel()
		return nil, nil
	}

	_, err := retry.FetchAfterMutation(ctx, retry.Policy{MaxAttempts: 3, Delay: time.Hour}, fetch)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestPolicy_MinimoUnIntento(t *testing.T) {
	calls := 0
	_, err := retry.FetchAfterMutation(context.Background(), retry.Policy{}, func(context.Context) ([]string, error) {
		calls++
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
