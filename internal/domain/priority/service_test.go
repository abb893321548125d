package priority_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"opsdeck/internal/domain/priority"
	"opsdeck/internal/state"
	"opsdeck/internal/storage"
)

type logRecorder struct {
	entries []string
}

func (l *logRecorder) Log(ctx context.Context, text string) {
	l.entries = append(l.entries, text)
}

func newTestService(t *testing.T) (*priority.Service, *logRecorder) {
	t.Helper()

	slice := state.NewSlice(storage.NewMemory(), "priorities", []priority.Priority(nil), nil)
	slice.Hydrate(context.Background())
	log := &logRecorder{}
	return priority.NewService(slice, log, nil), log
}

func TestAdd_TrimsAndLogs(t *testing.T) {
	ctx := context.Background()
	svc, log := newTestService(t)

	p, err := svc.Add(ctx, "  call the bank  ")
	require.NoError(t, err)
	require.Equal(t, "call the bank", p.Text)
	require.False(t, p.Done)
	require.Len(t, log.entries, 1)
}

func TestAdd_EmptyTextIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, log := newTestService(t)

	_, err := svc.Add(ctx, "")
	require.ErrorIs(t, err, priority.ErrInvalidInput)
	require.Empty(t, svc.List())
	require.Empty(t, log.entries)
}

func TestToggle_FlipsDoneBothWays(t *testing.T) {
	ctx := context.Background()
	svc, log := newTestService(t)

	p, err := svc.Add(ctx, "review costs")
	require.NoError(t, err)

	done, err := svc.Toggle(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, done.Done)
	require.Contains(t, log.entries[1], "completed")

	reopened, err := svc.Toggle(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, reopened.Done)
	require.Contains(t, log.entries[2], "reopened")
}

func TestDelete_UnknownIDFails(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.ErrorIs(t, svc.Delete(ctx, "missing"), priority.ErrPriorityNotFound)
}
