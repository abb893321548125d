package calendar

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
	ErrInvalidInput = errors.New("invalid calendar input")
	// ErrEventNotFound indicates the event doesn't exist.
	ErrEventNotFound = errors.New("calendar event not found")
)

// Slice provides access to the persisted calendar collection.
type Slice interface {
	Value() []Event
	Update(ctx context.Context, fn func([]Event) []Event)
}

// ActivityLog records human-readable operation descriptions.
type ActivityLog interface {
	Log(ctx context.Context, text string)
}

// Service handles calendar mutations.
type Service struct {
	events   Slice
	activity ActivityLog
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new calendar service.
func NewService(events Slice, activity ActivityLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{events: events, activity: activity, logger: logger, now: time.Now}
}

// AddRequest defines calendar event inputs.
type AddRequest struct {
	Title    string
	When     string
	Location string
}

// Add schedules an event. Empty title or when rejects the mutation.
func (s *Service) Add(ctx context.Context, req AddRequest) (*Event, error) {
	title := strings.TrimSpace(req.Title)
	when := strings.TrimSpace(req.When)
	if title == "" || when == "" {
		return nil, ErrInvalidInput
	}

	event := Event{
		ID:        uuid.NewString(),
		Title:     title,
		When:      when,
		Location:  strings.TrimSpace(req.Location),
		CreatedAt: s.now(),
	}

	s.events.Update(ctx, func(prev []Event) []Event {
		next := make([]Event, 0, len(prev)+1)
		next = append(next, prev...)
		return append(next, event)
	})

	s.activity.Log(ctx, fmt.Sprintf("Scheduled %q", event.Title))
	return &event, nil
}

// Delete removes an event.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	var deleted *Event
	s.events.Update(ctx, func(prev []Event) []Event {
		next := make([]Event, 0, len(prev))
		for _, e := range prev {
			if e.ID == id {
				clone := e
				deleted = &clone
				continue
			}
			next = append(next, e)
		}
		return next
	})

	if deleted == nil {
		return ErrEventNotFound
	}
	s.activity.Log(ctx, fmt.Sprintf("Removed event %q", deleted.Title))
	return nil
}

// List returns the current calendar collection.
func (s *Service) List() []Event {
	return s.events.Value()
}
