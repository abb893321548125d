package goal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"opsdeck/internal/domain/goal"
	"opsdeck/internal/state"
	"opsdeck/internal/storage"
)

type logRecorder struct {
	entries []string
}

func (l *logRecorder) Log(ctx context.Context, text string) {
	l.entries = append(l.entries, text)
}

func TestSet_ReplacesSettings(t *testing.T) {
	ctx := context.Background()
	slice := state.NewSlice(storage.NewMemory(), "goal", goal.Settings{Name: "Launch", Percent: 10, Date: "2026-12-01"}, nil)
	slice.Hydrate(ctx)
	log := &logRecorder{}
	svc := goal.NewService(slice, log, nil)

	updated, err := svc.Set(ctx, goal.Settings{Name: "Ship v2", Percent: 40, Date: "2026-10-15"})
	require.NoError(t, err)
	require.Equal(t, "Ship v2", updated.Name)
	require.Equal(t, updated, svc.Get())
	require.Len(t, log.entries, 1)

	// Percent is not clamped at write time.
	over, err := svc.Set(ctx, goal.Settings{Name: "Stretch", Percent: 140, Date: "2026-10-15"})
	require.NoError(t, err)
	require.Equal(t, 140, over.Percent)
}

func TestSet_EmptyNameIsNoOp(t *testing.T) {
	ctx := context.Background()
	initial := goal.Settings{Name: "Launch", Percent: 10, Date: "2026-12-01"}
	slice := state.NewSlice(storage.NewMemory(), "goal", initial, nil)
	slice.Hydrate(ctx)
	svc := goal.NewService(slice, &logRecorder{}, nil)

	_, err := svc.Set(ctx, goal.Settings{Name: "  "})
	require.ErrorIs(t, err, goal.ErrInvalidInput)
	require.Equal(t, initial, svc.Get())
}
