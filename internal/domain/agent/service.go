package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// dispatchDelay simulates the time an agent spends on a dispatched task
// before reporting back online.
const dispatchDelay = 1200 * time.Millisecond

var (
	// ErrInvalidInput indicates the mutation was rejected and nothing changed.
	ErrInvalidInput = errors.New("invalid agent input")
	// ErrAgentNotFound indicates the agent doesn't exist.
	ErrAgentNotFound = errors.New("agent not found")
)

// Slice provides access to the persisted agent collection.
type Slice interface {
	Value() []Agent
	Update(ctx context.Context, fn func([]Agent) []Agent)
}

// ActivityLog records human-readable operation descriptions.
type ActivityLog interface {
	Log(ctx context.Context, text string)
}

// Service handles agent mutations and the simulated dispatch lifecycle.
// Dispatch timers are owned by the service and canceled on Close so a
// teardown never leaves a callback touching freed state.
type Service struct {
	agents   Slice
	activity ActivityLog
	logger   *slog.Logger
	now      func() time.Time
	delay    time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// NewService creates a new agent service.
func NewService(agents Slice, activity ActivityLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		agents:   agents,
		activity: activity,
		logger:   logger,
		now:      time.Now,
		delay:    dispatchDelay,
		timers:   map[string]*time.Timer{},
	}
}

// SendTask dispatches a unit of work to an agent: the task is appended to
// the agent's own feed, the agent goes busy, and a one-shot timer returns
// it to online after the simulated dispatch delay. Re-dispatching to a
// busy agent resets its timer.
func (s *Service) SendTask(ctx context.Context, id, text string) (*Agent, error) {
	text = strings.TrimSpace(text)
	if id == "" || text == "" {
		return nil, ErrInvalidInput
	}

	event := Event{ID: uuid.NewString(), TS: s.now(), Text: text}

	var dispatched *Agent
	s.agents.Update(ctx, func(prev []Agent) []Agent {
		next := make([]Agent, len(prev))
		for i, a := range prev {
			if a.ID == id {
				feed := make([]Event, 0, len(a.Activity)+1)
				feed = append(feed, event)
				feed = append(feed, a.Activity...)
				if len(feed) > MaxActivity {
					feed = feed[:MaxActivity]
				}
				a.Activity = feed
				a.Status = StatusBusy
				a.LastActive = event.TS
				clone := a
				dispatched = &clone
			}
			next[i] = a
		}
		return next
	})

	if dispatched == nil {
		return nil, ErrAgentNotFound
	}

	s.activity.Log(ctx, fmt.Sprintf("Sent task to %s: %s", dispatched.Name, text))
	s.scheduleReturn(id)
	return dispatched, nil
}

// UpdateNotes replaces an agent's performance notes.
func (s *Service) UpdateNotes(ctx context.Context, id, notes string) (*Agent, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}

	var updated *Agent
	s.agents.Update(ctx, func(prev []Agent) []Agent {
		next := make([]Agent, len(prev))
		for i, a := range prev {
			if a.ID == id {
				a.PerfNotes = strings.TrimSpace(notes)
				clone := a
				updated = &clone
			}
			next[i] = a
		}
		return next
	})

	if updated == nil {
		return nil, ErrAgentNotFound
	}
	return updated, nil
}

// Get returns one agent by ID.
func (s *Service) Get(id string) (*Agent, error) {
	for _, a := range s.agents.Value() {
		if a.ID == id {
			clone := a
			return &clone, nil
		}
	}
	return nil, ErrAgentNotFound
}

// List returns the current agent collection.
func (s *Service) List() []Agent {
	return s.agents.Value()
}

// Close cancels all outstanding dispatch timers. Subsequent dispatches
// still mutate state but never schedule a return transition.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *Service) scheduleReturn(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
	}
	s.timers[id] = time.AfterFunc(s.delay, func() {
		s.returnOnline(id)
	})
}

func (s *Service) returnOnline(id string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	s.mu.Unlock()

	// The timer fires outside any request; the write is best-effort like
	// every other slice write.
	s.agents.Update(context.Background(), func(prev []Agent) []Agent {
		next := make([]Agent, len(prev))
		for i, a := range prev {
			if a.ID == id && a.Status == StatusBusy {
				a.Status = StatusOnline
				a.LastActive = s.now()
			}
			next[i] = a
		}
		return next
	})
}
