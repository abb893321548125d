package metrics

import (
	"sync"
	"time"

	"opsdeck/internal/domain/client"
	"opsdeck/internal/domain/cost"
	"opsdeck/internal/domain/goal"
	"opsdeck/internal/domain/task"
)

// Source is the read side of a persistent slice: a current value plus a
// version counter that advances whenever the value changes. Aggregates
// memoize over the version instead of deep-comparing values.
type Source[T any] interface {
	Value() T
	Version() uint64
}

// Engine computes derived aggregates over the current slice values,
// caching each result until its input slice version or the relevant
// clock boundary (day or month) moves.
type Engine struct {
	tasks       Source[[]task.Task]
	costs       Source[[]cost.Item]
	clients     Source[[]client.Client]
	goal        Source[goal.Settings]
	revenueGoal Source[float64]
	now         func() time.Time

	mu        sync.Mutex
	board     memo[Board]
	costTotal memo[costResult]
	today     memo[int]
	active    memo[int]
	goalDays  memo[int]
	mrr       memo[float64]
	revenue   memo[[]RevenuePoint]
}

type costResult struct {
	Total    float64
	Currency string
}

// memo caches one computed aggregate keyed by input version plus a clock
// component where the aggregate is time-sensitive.
type memo[T any] struct {
	valid   bool
	version uint64
	clock   string
	value   T
}

func (m *memo[T]) get(version uint64, clock string) (T, bool) {
	if m.valid && m.version == version && m.clock == clock {
		return m.value, true
	}
	var zero T
	return zero, false
}

func (m *memo[T]) put(version uint64, clock string, value T) T {
	m.valid = true
	m.version = version
	m.clock = clock
	m.value = value
	return value
}

// NewEngine creates an aggregation engine over the given sources. now
// defaults to time.Now.
func NewEngine(
	tasks Source[[]task.Task],
	costs Source[[]cost.Item],
	clients Source[[]client.Client],
	goalSettings Source[goal.Settings],
	revenueGoal Source[float64],
	now func() time.Time,
) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		tasks:       tasks,
		costs:       costs,
		clients:     clients,
		goal:        goalSettings,
		revenueGoal: revenueGoal,
		now:         now,
	}
}

// Board returns the kanban grouping of the current tasks.
func (e *Engine) Board() Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.tasks.Version()
	if cached, ok := e.board.get(v, ""); ok {
		return cached
	}
	return e.board.put(v, "", GroupTasks(e.tasks.Value()))
}

// MonthlyCostTotal returns the normalized monthly cost total and its
// display currency.
func (e *Engine) MonthlyCostTotal() (float64, string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.costs.Version()
	if cached, ok := e.costTotal.get(v, ""); ok {
		return cached.Total, cached.Currency
	}
	total, currency := MonthlyCostTotal(e.costs.Value())
	result := e.costTotal.put(v, "", costResult{Total: total, Currency: currency})
	return result.Total, result.Currency
}

// TasksCreatedToday counts tasks created on the current local date.
func (e *Engine) TasksCreatedToday() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	v, day := e.tasks.Version(), now.Format("2006-01-02")
	if cached, ok := e.today.get(v, day); ok {
		return cached
	}
	return e.today.put(v, day, TasksCreatedToday(e.tasks.Value(), now))
}

// ActiveProjects counts tasks not yet done.
func (e *Engine) ActiveProjects() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.tasks.Version()
	if cached, ok := e.active.get(v, ""); ok {
		return cached
	}
	return e.active.put(v, "", ActiveProjects(e.tasks.Value()))
}

// DaysToGoal returns whole days until the goal date, never negative.
func (e *Engine) DaysToGoal() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	v, day := e.goal.Version(), now.Format("2006-01-02")
	if cached, ok := e.goalDays.get(v, day); ok {
		return cached
	}
	return e.goalDays.put(v, day, DaysToGoal(e.goal.Value().Date, now))
}

// MRR sums recurring revenue over active clients.
func (e *Engine) MRR() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.clients.Version()
	if cached, ok := e.mrr.get(v, ""); ok {
		return cached
	}
	return e.mrr.put(v, "", MRR(e.clients.Value()))
}

// RevenueSeries returns the trailing six-month revenue series.
func (e *Engine) RevenueSeries() []RevenuePoint {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	v, month := e.clients.Version(), now.Format("2006-01")
	if cached, ok := e.revenue.get(v, month); ok {
		return cached
	}
	return e.revenue.put(v, month, RevenueSeries(e.clients.Value(), now))
}

// Summary bundles the headline dashboard numbers.
type Summary struct {
	MRR          float64 `json:"mrr"`
	RevenueGoal  float64 `json:"revenue_goal"`
	MonthlyCost  float64 `json:"monthly_cost"`
	CostCurrency string  `json:"cost_currency,omitempty"`
	TasksToday   int     `json:"tasks_today"`
	ActiveCount  int     `json:"active_projects"`
	DaysToGoal   int     `json:"days_to_goal"`
	GoalName     string  `json:"goal_name,omitempty"`
	GoalPercent  int     `json:"goal_percent"`
}

// Summarize computes the headline numbers in one call. GoalPercent is
// clamped to [0,100] here, at display time.
func (e *Engine) Summarize() Summary {
	costTotal, currency := e.MonthlyCostTotal()
	g := e.goal.Value()
	percent := g.Percent
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	return Summary{
		MRR:          e.MRR(),
		RevenueGoal:  e.revenueGoal.Value(),
		MonthlyCost:  costTotal,
		CostCurrency: currency,
		TasksToday:   e.TasksCreatedToday(),
		ActiveCount:  e.ActiveProjects(),
		DaysToGoal:   e.DaysToGoal(),
		GoalName:     g.Name,
		GoalPercent:  percent,
	}
}
