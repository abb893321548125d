// Package app wires the persistent slices, mutator services, and
// aggregation engine into one process-scoped state container.
package app

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"opsdeck/internal/domain/activity"
	"opsdeck/internal/domain/agent"
	"opsdeck/internal/domain/calendar"
	"opsdeck/internal/domain/client"
	"opsdeck/internal/domain/cost"
	"opsdeck/internal/domain/decision"
	"opsdeck/internal/domain/goal"
	"opsdeck/internal/domain/priority"
	"opsdeck/internal/domain/task"
	"opsdeck/internal/metrics"
	"opsdeck/internal/state"
	"opsdeck/internal/storage"
)

// Backing store keys, one per slice.
const (
	KeyGoal        = "goal"
	KeyPriorities  = "priorities"
	KeyActivity    = "activity"
	KeyTasks       = "tasks"
	KeyNotes       = "notes"
	KeyTab         = "tab"
	KeyCosts       = "costs"
	KeyCalendar    = "calendar"
	KeyRevenueGoal = "revenue.goal"
	KeyClients     = "revenue.clients"
	KeyAgents      = "agents"
	KeyDecisions   = "decisions"
)

// DefaultTab is the view shown before any tab has been chosen.
const DefaultTab = "dashboard"

// Container owns every persisted slice, the mutator services over them,
// and the derived aggregation engine. It is constructed once per process
// and torn down with Close, which stops all timers.
type Container struct {
	logger *slog.Logger

	goal        *state.Slice[goal.Settings]
	priorities  *state.Slice[[]priority.Priority]
	activity    *state.Slice[[]activity.Item]
	tasks       *state.Slice[[]task.Task]
	notes       *state.Slice[string]
	tab         *state.Slice[string]
	costs       *state.Slice[[]cost.Item]
	calendar    *state.Slice[[]calendar.Event]
	revenueGoal *state.Slice[float64]
	clients     *state.Slice[[]client.Client]
	agents      *state.Slice[[]agent.Agent]
	decisions   *state.Slice[[]decision.Decision]

	Activity   *activity.Service
	Tasks      *task.Service
	Priorities *priority.Service
	Costs      *cost.Service
	Calendar   *calendar.Service
	Clients    *client.Service
	Agents     *agent.Service
	Decisions  *decision.Service
	Goal       *goal.Service
	Metrics    *metrics.Engine

	// clockNow is refreshed once per second; it is what all
	// time-relative aggregates observe, so countdown and today-boundary
	// views stay correct with zero user interaction.
	clockNow  atomic.Int64
	stopClock chan struct{}
	closeOnce sync.Once
}

// New builds a container over the given store. The clock starts ticking
// immediately; call Hydrate before serving reads.
func New(store storage.Store, logger *slog.Logger) *Container {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		logger:      logger,
		goal:        state.NewSlice(store, KeyGoal, goal.Settings{}, logger),
		priorities:  state.NewSlice(store, KeyPriorities, []priority.Priority(nil), logger),
		activity:    state.NewSlice(store, KeyActivity, []activity.Item(nil), logger),
		tasks:       state.NewSlice(store, KeyTasks, []task.Task(nil), logger),
		notes:       state.NewSlice(store, KeyNotes, "", logger),
		tab:         state.NewSlice(store, KeyTab, DefaultTab, logger),
		costs:       state.NewSlice(store, KeyCosts, []cost.Item(nil), logger),
		calendar:    state.NewSlice(store, KeyCalendar, []calendar.Event(nil), logger),
		revenueGoal: state.NewSlice(store, KeyRevenueGoal, float64(0), logger),
		clients:     state.NewSlice(store, KeyClients, []client.Client(nil), logger),
		agents:      state.NewSlice(store, KeyAgents, []agent.Agent(nil), logger),
		decisions:   state.NewSlice(store, KeyDecisions, []decision.Decision(nil), logger),
		stopClock:   make(chan struct{}),
	}

	c.clockNow.Store(time.Now().UnixNano())
	go c.runClock()

	c.Activity = activity.NewService(c.activity, logger)
	c.Tasks = task.NewService(c.tasks, c.Activity, logger)
	c.Priorities = priority.NewService(c.priorities, c.Activity, logger)
	c.Costs = cost.NewService(c.costs, c.Activity, logger)
	c.Calendar = calendar.NewService(c.calendar, c.Activity, logger)
	c.Clients = client.NewService(c.clients, c.revenueGoal, c.Activity, logger)
	c.Agents = agent.NewService(c.agents, c.Activity, logger)
	c.Decisions = decision.NewService(c.decisions, c.Activity, logger)
	c.Goal = goal.NewService(c.goal, c.Activity, logger)
	c.Metrics = metrics.NewEngine(c.tasks, c.costs, c.clients, c.goal, c.revenueGoal, c.Now)

	return c
}

// Hydrate reads every slice from the backing store, then seeds the
// sample agents if this is a first run.
func (c *Container) Hydrate(ctx context.Context) {
	c.goal.Hydrate(ctx)
	c.priorities.Hydrate(ctx)
	c.activity.Hydrate(ctx)
	c.tasks.Hydrate(ctx)
	c.notes.Hydrate(ctx)
	c.tab.Hydrate(ctx)
	c.costs.Hydrate(ctx)
	c.calendar.Hydrate(ctx)
	c.revenueGoal.Hydrate(ctx)
	c.clients.Hydrate(ctx)
	c.agents.Hydrate(ctx)
	c.decisions.Hydrate(ctx)

	if len(c.agents.Value()) == 0 {
		c.agents.Replace(ctx, agent.Seed(c.Now()))
		c.logger.Info("seeded sample agents")
	}
}

// Now returns the clock-tick view of the current time, refreshed once
// per second while the container is open.
func (c *Container) Now() time.Time {
	return time.Unix(0, c.clockNow.Load())
}

// Notes returns the free-form notes text.
func (c *Container) Notes() string {
	return c.notes.Value()
}

// SetNotes replaces the free-form notes text.
func (c *Container) SetNotes(ctx context.Context, text string) {
	c.notes.Replace(ctx, text)
}

// Tab returns the current view identifier.
func (c *Container) Tab() string {
	return c.tab.Value()
}

// SetTab replaces the current view identifier. Empty input is ignored.
func (c *Container) SetTab(ctx context.Context, tab string) {
	if tab == "" {
		return
	}
	c.tab.Replace(ctx, tab)
}

// Close stops the clock and cancels all agent dispatch timers. Safe to
// call more than once.
func (c *Container) Close() {
	c.closeOnce.Do(func() {
		close(c.stopClock)
		c.Agents.Close()
	})
}

func (c *Container) runClock() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.clockNow.Store(time.Now().UnixNano())
		case <-c.stopClock:
			return
		}
	}
}
