package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"opsdeck/internal/domain/client"
	"opsdeck/internal/domain/cost"
	"opsdeck/internal/domain/goal"
	"opsdeck/internal/domain/task"
	"opsdeck/internal/metrics"
	"opsdeck/internal/state"
	"opsdeck/internal/storage"
)

type engineFixture struct {
	engine  *metrics.Engine
	tasks   *state.Slice[[]task.Task]
	costs   *state.Slice[[]cost.Item]
	clients *state.Slice[[]client.Client]
	goal    *state.Slice[goal.Settings]
	now     time.Time
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	ctx := context.Background()
	store := storage.NewMemory()
	f := &engineFixture{
		tasks:   state.NewSlice(store, "tasks", []task.Task(nil), nil),
		costs:   state.NewSlice(store, "costs", []cost.Item(nil), nil),
		clients: state.NewSlice(store, "revenue.clients", []client.Client(nil), nil),
		goal:    state.NewSlice(store, "goal", goal.Settings{}, nil),
		now:     time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local),
	}
	for _, hydrate := range []func(context.Context){f.tasks.Hydrate, f.costs.Hydrate, f.clients.Hydrate, f.goal.Hydrate} {
		hydrate(ctx)
	}
	revenueGoal := state.NewSlice(store, "revenue.goal", float64(10000), nil)
	revenueGoal.Hydrate(ctx)
	f.engine = metrics.NewEngine(f.tasks, f.costs, f.clients, f.goal, revenueGoal, func() time.Time { return f.now })
	return f
}

func TestEngine_RecomputesWhenSliceChanges(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)

	require.Zero(t, f.engine.MRR())

	f.clients.Replace(ctx, []client.Client{
		{ID: "c1", Name: "Acme", MRR: 500, Status: client.StatusActive, Start: "2026-01-01"},
	})
	require.Equal(t, 500.0, f.engine.MRR())

	f.clients.Update(ctx, func(prev []client.Client) []client.Client {
		next := make([]client.Client, len(prev))
		copy(next, prev)
		next[0].Status = client.StatusChurned
		return next
	})
	require.Zero(t, f.engine.MRR(), "churned client drops out of MRR")
}

func TestEngine_BoardReflectsMoves(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)

	f.tasks.Replace(ctx, []task.Task{
		{ID: "t1", Title: "Card", Column: task.ColumnBacklog, CreatedAt: f.now},
	})
	board := f.engine.Board()
	require.Len(t, board.Backlog, 1)
	require.Empty(t, board.InProgress)

	f.tasks.Update(ctx, func(prev []task.Task) []task.Task {
		next := make([]task.Task, len(prev))
		copy(next, prev)
		next[0].Column = task.ColumnInProgress
		return next
	})
	board = f.engine.Board()
	require.Empty(t, board.Backlog)
	require.Len(t, board.InProgress, 1)
}

func TestEngine_DayBoundaryInvalidatesTimeAggregates(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)

	f.goal.Replace(ctx, goal.Settings{Name: "Launch", Date: "2026-03-17"})
	require.Equal(t, 2, f.engine.DaysToGoal())

	// Same slice version, next day: the cached value must not be reused.
	f.now = f.now.Add(24 * time.Hour)
	require.Equal(t, 1, f.engine.DaysToGoal())
}

func TestEngine_SummarizeClampsGoalPercent(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)

	f.goal.Replace(ctx, goal.Settings{Name: "Launch", Percent: 140, Date: "2026-06-01"})
	f.costs.Replace(ctx, []cost.Item{
		{ID: "c1", Label: "Licenses", Amount: 120, Currency: "USD", Period: cost.PeriodYearly},
		{ID: "c2", Label: "Hosting", Amount: 20, Currency: "USD", Period: cost.PeriodMonthly},
	})

	summary := f.engine.Summarize()
	require.Equal(t, 100, summary.GoalPercent)
	require.InDelta(t, 30.0, summary.MonthlyCost, 1e-9)
	require.Equal(t, 10000.0, summary.RevenueGoal)
}
