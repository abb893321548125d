package agent_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"opsdeck/internal/domain/agent"
	"opsdeck/internal/state"
	"opsdeck/internal/storage"
)

type logRecorder struct {
	entries []string
}

func (l *logRecorder) Log(ctx context.Context, text string) {
	l.entries = append(l.entries, text)
}

func newTestService(t *testing.T) (*agent.Service, *state.Slice[[]agent.Agent], *logRecorder) {
	t.Helper()

	ctx := context.Background()
	slice := state.NewSlice(storage.NewMemory(), "agents", agent.Seed(time.Now()), nil)
	slice.Hydrate(ctx)
	log := &logRecorder{}
	svc := agent.NewService(slice, log, nil)
	agent.SetDelay(svc, 10*time.Millisecond)
	t.Cleanup(svc.Close)
	return svc, slice, log
}

func TestSeed_ProvidesThreeAgents(t *testing.T) {
	require.Len(t, agent.Seed(time.Now()), 3)
}

func TestSendTask_FlipsBusyThenBackOnline(t *testing.T) {
	ctx := context.Background()
	svc, _, log := newTestService(t)

	dispatched, err := svc.SendTask(ctx, "agent-scout", "summarize q3 numbers")
	require.NoError(t, err)
	require.Equal(t, agent.StatusBusy, dispatched.Status)
	require.Len(t, dispatched.Activity, 1)
	require.Equal(t, "summarize q3 numbers", dispatched.Activity[0].Text)
	require.Contains(t, log.entries[0], "Scout")

	require.Eventually(t, func() bool {
		a, err := svc.Get("agent-scout")
		return err == nil && a.Status == agent.StatusOnline
	}, time.Second, 5*time.Millisecond, "agent should return online after the dispatch delay")
}

func TestSendTask_EmptyTextIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _, log := newTestService(t)

	_, err := svc.SendTask(ctx, "agent-scout", "  ")
	require.ErrorIs(t, err, agent.ErrInvalidInput)
	require.Empty(t, log.entries)
}

func TestSendTask_UnknownAgentFails(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.SendTask(ctx, "agent-nobody", "hello")
	require.ErrorIs(t, err, agent.ErrAgentNotFound)
}

func TestSendTask_FeedCapsAtMaxActivity(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	svc.Close() // keep agents busy: no return timers interfering with counts

	for i := 0; i < agent.MaxActivity+5; i++ {
		_, err := svc.SendTask(ctx, "agent-ledger", fmt.Sprintf("task %d", i))
		require.NoError(t, err)
	}

	a, err := svc.Get("agent-ledger")
	require.NoError(t, err)
	require.Len(t, a.Activity, agent.MaxActivity)
	require.Equal(t, fmt.Sprintf("task %d", agent.MaxActivity+4), a.Activity[0].Text)
}

func TestClose_CancelsPendingReturn(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.SendTask(ctx, "agent-scout", "long running job")
	require.NoError(t, err)
	svc.Close()

	time.Sleep(50 * time.Millisecond)
	a, err := svc.Get("agent-scout")
	require.NoError(t, err)
	require.Equal(t, agent.StatusBusy, a.Status, "canceled timer must not flip status")
}

func TestUpdateNotes_SetsPerfNotes(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	updated, err := svc.UpdateNotes(ctx, "agent-quill", " slow on long drafts ")
	require.NoError(t, err)
	require.Equal(t, "slow on long drafts", updated.PerfNotes)
}
