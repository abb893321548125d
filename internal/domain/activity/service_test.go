package activity_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"opsdeck/internal/domain/activity"
	"opsdeck/internal/state"
	"opsdeck/internal/storage"
)

func newTestService(t *testing.T) (*activity.Service, *state.Slice[[]activity.Item]) {
	t.Helper()

	slice := state.NewSlice(storage.NewMemory(), "activity", []activity.Item(nil), nil)
	slice.Hydrate(context.Background())
	return activity.NewService(slice, nil), slice
}

func TestLog_PrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, slice := newTestService(t)

	svc.Log(ctx, "first")
	svc.Log(ctx, "second")

	items := slice.Value()
	require.Len(t, items, 2)
	require.Equal(t, "second", items[0].Text)
	require.Equal(t, "first", items[1].Text)
	require.NotEqual(t, items[0].ID, items[1].ID)
}

func TestLog_DropsEmptyText(t *testing.T) {
	ctx := context.Background()
	svc, slice := newTestService(t)

	svc.Log(ctx, "   ")
	require.Empty(t, slice.Value())
}

func TestLog_CapsAtMaxEntries(t *testing.T) {
	ctx := context.Background()
	svc, slice := newTestService(t)

	for i := 0; i < activity.MaxEntries+10; i++ {
		svc.Log(ctx, fmt.Sprintf("event %d", i))
	}

	items := slice.Value()
	require.Len(t, items, activity.MaxEntries)
	// Newest entry survives at the head, oldest entries fell off the tail.
	require.Equal(t, fmt.Sprintf("event %d", activity.MaxEntries+9), items[0].Text)
}

func TestRecent_LimitsResults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for i := 0; i < 5; i++ {
		svc.Log(ctx, fmt.Sprintf("event %d", i))
	}

	require.Len(t, svc.Recent(3), 3)
	require.Len(t, svc.Recent(0), 5)
	require.Len(t, svc.Recent(50), 5)
}
