package decision

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
	ErrInvalidInput = errors.New("invalid decision input")
	// ErrDecisionNotFound indicates the decision doesn't exist.
	ErrDecisionNotFound = errors.New("decision not found")
)

// Slice provides access to the persisted decision collection.
type Slice interface {
	Value() []Decision
	Update(ctx context.Context, fn func([]Decision) []Decision)
}

// ActivityLog records human-readable operation descriptions.
type ActivityLog interface {
	Log(ctx context.Context, text string)
}

// Service handles decision log mutations.
type Service struct {
	decisions Slice
	activity  ActivityLog
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a new decision service.
func NewService(decisions Slice, activity ActivityLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{decisions: decisions, activity: activity, logger: logger, now: time.Now}
}

// AddRequest defines decision inputs.
type AddRequest struct {
	Date      string
	Question  string
	Summary   string
	Consulted []string
}

// Add records a decision. An empty question rejects the mutation; a
// missing date defaults to today.
func (s *Service) Add(ctx context.Context, req AddRequest) (*Decision, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, ErrInvalidInput
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	consulted := make([]string, 0, len(req.Consulted))
	for _, name := range req.Consulted {
		if name = strings.TrimSpace(name); name != "" {
			consulted = append(consulted, name)
		}
	}

	d := Decision{
		ID:        uuid.NewString(),
		Date:      date,
		Question:  question,
		Summary:   strings.TrimSpace(req.Summary),
		Consulted: consulted,
		CreatedAt: s.now(),
	}

	s.decisions.Update(ctx, func(prev []Decision) []Decision {
		next := make([]Decision, 0, len(prev)+1)
		next = append(next, prev...)
		return append(next, d)
	})

	s.activity.Log(ctx, fmt.Sprintf("Logged decision %q", d.Question))
	return &d, nil
}

// Delete removes a decision.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	var deleted *Decision
	s.decisions.Update(ctx, func(prev []Decision) []Decision {
		next := make([]Decision, 0, len(prev))
		for _, d := range prev {
			if d.ID == id {
				clone := d
				deleted = &clone
				continue
			}
			next = append(next, d)
		}
		return next
	})

	if deleted == nil {
		return ErrDecisionNotFound
	}
	s.activity.Log(ctx, fmt.Sprintf("Removed decision %q", deleted.Question))
	return nil
}

// List returns the current decision collection.
func (s *Service) List() []Decision {
	return s.decisions.Value()
}
