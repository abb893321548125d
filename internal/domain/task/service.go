package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles task mutations. Every mutation replaces the whole
// collection through the slice; unaffected tasks pass through unchanged.
type Service struct {
	tasks    Slice
	activity ActivityLog
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new task service.
func NewService(tasks Slice, activity ActivityLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{tasks: tasks, activity: activity, logger: logger, now: time.Now}
}

// CreateRequest defines task creation inputs.
type CreateRequest struct {
	Title       string
	Description string
	Priority    Priority
	Column      Column
}

// UpdateRequest defines task field updates. Nil fields are left unchanged.
type UpdateRequest struct {
	ID          string
	Title       *string
	Description *string
	Priority    *Priority
}

// Create adds a task to the board. A trimmed-empty title rejects the
// mutation: no task is created and no activity is logged.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	priority := req.Priority
	if !priority.Valid() {
		priority = PriorityMedium
	}
	column := req.Column
	if !column.Valid() {
		column = ColumnBacklog
	}

	t := Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Priority:    priority,
		Column:      column,
		CreatedAt:   s.now(),
	}

	s.tasks.Update(ctx, func(prev []Task) []Task {
		next := make([]Task, 0, len(prev)+1)
		next = append(next, prev...)
		return append(next, t)
	})

	s.activity.Log(ctx, fmt.Sprintf("Created task %q", t.Title))
	return &t, nil
}

// Update modifies task fields in place on a new collection value.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Task, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrInvalidInput
	}

	var updated *Task
	s.tasks.Update(ctx, func(prev []Task) []Task {
		next := make([]Task, len(prev))
		for i, t := range prev {
			if t.ID == req.ID {
				if req.Title != nil {
					t.Title = strings.TrimSpace(*req.Title)
				}
				if req.Description != nil {
					t.Description = strings.TrimSpace(*req.Description)
				}
				if req.Priority != nil && req.Priority.Valid() {
					t.Priority = *req.Priority
				}
				clone := t
				updated = &clone
			}
			next[i] = t
		}
		return next
	})

	if updated == nil {
		return nil, ErrTaskNotFound
	}
	s.activity.Log(ctx, fmt.Sprintf("Updated task %q", updated.Title))
	return updated, nil
}

// Move places a task in a different column.
func (s *Service) Move(ctx context.Context, id string, to Column) (*Task, error) {
	if id == "" || !to.Valid() {
		return nil, ErrInvalidInput
	}

	var moved *Task
	s.tasks.Update(ctx, func(prev []Task) []Task {
		next := make([]Task, len(prev))
		for i, t := range prev {
			if t.ID == id {
				t.Column = to
				clone := t
				moved = &clone
			}
			next[i] = t
		}
		return next
	})

	if moved == nil {
		return nil, ErrTaskNotFound
	}
	s.activity.Log(ctx, fmt.Sprintf("Moved task %q to %s", moved.Title, to))
	return moved, nil
}

// Delete removes a task from the board.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	var deleted *Task
	s.tasks.Update(ctx, func(prev []Task) []Task {
		next := make([]Task, 0, len(prev))
		for _, t := range prev {
			if t.ID == id {
				clone := t
				deleted = &clone
				continue
			}
			next = append(next, t)
		}
		return next
	})

	if deleted == nil {
		return ErrTaskNotFound
	}
	s.activity.Log(ctx, fmt.Sprintf("Deleted task %q", deleted.Title))
	return nil
}

// List returns the current task collection.
func (s *Service) List() []Task {
	return s.tasks.Value()
}
