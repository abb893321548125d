package priority

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidInput indicates the mutation was rejected and nothing changed.
	ErrInvalidInput = errors.New("invalid priority input")
	// ErrPriorityNotFound indicates the priority doesn't exist.
	ErrPriorityNotFound = errors.New("priority not found")
)

// Slice provides access to the persisted priority collection.
type Slice interface {
	Value() []Priority
	Update(ctx context.Context, fn func([]Priority) []Priority)
}

// ActivityLog records human-readable operation descriptions.
type ActivityLog interface {
	Log(ctx context.Context, text string)
}

// Service handles priority checklist mutations.
type Service struct {
	priorities Slice
	activity   ActivityLog
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new priority service.
func NewService(priorities Slice, activity ActivityLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{priorities: priorities, activity: activity, logger: logger, now: time.Now}
}

// Add appends a new priority. Empty text is a silent no-op.
func (s *Service) Add(ctx context.Context, text string) (*Priority, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalidInput
	}

	p := Priority{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: s.now(),
	}

	s.priorities.Update(ctx, func(prev []Priority) []Priority {
		next := make([]Priority, 0, len(prev)+1)
		next = append(next, prev...)
		return append(next, p)
	})

	s.activity.Log(ctx, fmt.Sprintf("Added priority %q", p.Text))
	return &p, nil
}

// Toggle flips the done flag of one priority.
func (s *Service) Toggle(ctx context.Context, id string) (*Priority, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}

	var toggled *Priority
	s.priorities.Update(ctx, func(prev []Priority) []Priority {
		next := make([]Priority, len(prev))
		for i, p := range prev {
			if p.ID == id {
				p.Done = !p.Done
				clone := p
				toggled = &clone
			}
			next[i] = p
		}
		return next
	})

	if toggled == nil {
		return nil, ErrPriorityNotFound
	}

	status := "reopened"
	if toggled.Done {
		status = "completed"
	}
	s.activity.Log(ctx, fmt.Sprintf("Priority %q %s", toggled.Text, status))
	return toggled, nil
}

// Delete removes a priority.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	var deleted *Priority
	s.priorities.Update(ctx, func(prev []Priority) []Priority {
		next := make([]Priority, 0, len(prev))
		for _, p := range prev {
			if p.ID == id {
				clone := p
				deleted = &clone
				continue
			}
			next = append(next, p)
		}
		return next
	})

	if deleted == nil {
		return ErrPriorityNotFound
	}
	s.activity.Log(ctx, fmt.Sprintf("Removed priority %q", deleted.Text))
	return nil
}

// List returns the current priority collection.
func (s *Service) List() []Priority {
	return s.priorities.Value()
}
