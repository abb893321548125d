package cost

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
	ErrInvalidInput = errors.New("invalid cost input")
	// ErrCostNotFound indicates the cost item doesn't exist.
	ErrCostNotFound = errors.New("cost item not found")
)

// Slice provides access to the persisted cost collection.
type Slice interface {
	Value() []Item
	Update(ctx context.Context, fn func([]Item) []Item)
}

// ActivityLog records human-readable operation descriptions.
type ActivityLog interface {
	Log(ctx context.Context, text string)
}

// Service handles recurring cost mutations.
type Service struct {
	costs    Slice
	activity ActivityLog
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new cost service.
func NewService(costs Slice, activity ActivityLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{costs: costs, activity: activity, logger: logger, now: time.Now}
}

// AddRequest defines cost item creation inputs.
type AddRequest struct {
	Label    string
	Amount   float64
	Currency string
	Period   Period
}

// Add records a recurring cost. An empty label rejects the mutation.
func (s *Service) Add(ctx context.Context, req AddRequest) (*Item, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, ErrInvalidInput
	}

	period := req.Period
	if !period.Valid() {
		period = PeriodMonthly
	}
	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = "USD"
	}

	item := Item{
		ID:        uuid.NewString(),
		Label:     label,
		Amount:    req.Amount,
		Currency:  currency,
		Period:    period,
		CreatedAt: s.now(),
	}

	s.costs.Update(ctx, func(prev []Item) []Item {
		next := make([]Item, 0, len(prev)+1)
		next = append(next, prev...)
		return append(next, item)
	})

	s.activity.Log(ctx, fmt.Sprintf("Added cost %q (%.2f %s/%s)", item.Label, item.Amount, item.Currency, item.Period))
	return &item, nil
}

// Delete removes a cost item.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	var deleted *Item
	s.costs.Update(ctx, func(prev []Item) []Item {
		next := make([]Item, 0, len(prev))
		for _, item := range prev {
			if item.ID == id {
				clone := item
				deleted = &clone
				continue
			}
			next = append(next, item)
		}
		return next
	})

	if deleted == nil {
		return ErrCostNotFound
	}
	s.activity.Log(ctx, fmt.Sprintf("Removed cost %q", deleted.Label))
	return nil
}

// List returns the current cost collection.
func (s *Service) List() []Item {
	return s.costs.Value()
}
