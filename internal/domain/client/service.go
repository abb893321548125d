package client

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
	ErrInvalidInput = errors.New("invalid client input")
	// ErrClientNotFound indicates the client doesn't exist.
	ErrClientNotFound = errors.New("client not found")
)

// Slice provides access to the persisted client collection.
type Slice interface {
	Value() []Client
	Update(ctx context.Context, fn func([]Client) []Client)
}

// GoalSlice provides access to the persisted revenue goal.
type GoalSlice interface {
	Value() float64
	Replace(ctx context.Context, v float64)
}

// ActivityLog records human-readable operation descriptions.
type ActivityLog interface {
	Log(ctx context.Context, text string)
}

// Service handles client and revenue-goal mutations.
type Service struct {
	clients  Slice
	goal     GoalSlice
	activity ActivityLog
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new client service.
func NewService(clients Slice, goal GoalSlice, activity ActivityLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{clients: clients, goal: goal, activity: activity, logger: logger, now: time.Now}
}

// AddRequest defines client creation inputs.
type AddRequest struct {
	Name   string
	MRR    float64
	Status Status
	Start  string
}

// Add registers a client. An empty name rejects the mutation. A missing
// start date defaults to today; a missing status defaults to pending.
func (s *Service) Add(ctx context.Context, req AddRequest) (*Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	status := req.Status
	if !status.Valid() {
		status = StatusPending
	}
	start := strings.TrimSpace(req.Start)
	if start == "" {
		start = s.now().Format("2006-01-02")
	}

	c := Client{
		ID:        uuid.NewString(),
		Name:      name,
		MRR:       req.MRR,
		Status:    status,
		Start:     start,
		CreatedAt: s.now(),
	}

	s.clients.Update(ctx, func(prev []Client) []Client {
		next := make([]Client, 0, len(prev)+1)
		next = append(next, prev...)
		return append(next, c)
	})

	s.activity.Log(ctx, fmt.Sprintf("Added client %q at %.0f MRR", c.Name, c.MRR))
	return &c, nil
}

// UpdateRequest defines client field updates. Nil fields are left unchanged.
type UpdateRequest struct {
	ID   string
	Name *string
	MRR  *float64
}

// Update modifies client fields.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Client, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrInvalidInput
	}

	var updated *Client
	s.clients.Update(ctx, func(prev []Client) []Client {
		next := make([]Client, len(prev))
		for i, c := range prev {
			if c.ID == req.ID {
				if req.Name != nil {
					c.Name = strings.TrimSpace(*req.Name)
				}
				if req.MRR != nil {
					c.MRR = *req.MRR
				}
				clone := c
				updated = &clone
			}
			next[i] = c
		}
		return next
	})

	if updated == nil {
		return nil, ErrClientNotFound
	}
	s.activity.Log(ctx, fmt.Sprintf("Updated client %q", updated.Name))
	return updated, nil
}

// SetStatus moves a client between active, pending, and churned.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (*Client, error) {
	if id == "" || !status.Valid() {
		return nil, ErrInvalidInput
	}

	var changed *Client
	s.clients.Update(ctx, func(prev []Client) []Client {
		next := make([]Client, len(prev))
		for i, c := range prev {
			if c.ID == id {
				c.Status = status
				clone := c
				changed = &clone
			}
			next[i] = c
		}
		return next
	})

	if changed == nil {
		return nil, ErrClientNotFound
	}
	s.activity.Log(ctx, fmt.Sprintf("Client %q is now %s", changed.Name, status))
	return changed, nil
}

// Delete removes a client.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	var deleted *Client
	s.clients.Update(ctx, func(prev []Client) []Client {
		next := make([]Client, 0, len(prev))
		for _, c := range prev {
			if c.ID == id {
				clone := c
				deleted = &clone
				continue
			}
			next = append(next, c)
		}
		return next
	})

	if deleted == nil {
		return ErrClientNotFound
	}
	s.activity.Log(ctx, fmt.Sprintf("Removed client %q", deleted.Name))
	return nil
}

// SetRevenueGoal replaces the monthly revenue target.
func (s *Service) SetRevenueGoal(ctx context.Context, goal float64) {
	s.goal.Replace(ctx, goal)
	s.activity.Log(ctx, fmt.Sprintf("Revenue goal set to %.0f", goal))
}

// RevenueGoal returns the monthly revenue target.
func (s *Service) RevenueGoal() float64 {
	return s.goal.Value()
}

// List returns the current client collection.
func (s *Service) List() []Client {
	return s.clients.Value()
}
