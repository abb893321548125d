package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalidInput indicates the mutation was rejected and nothing changed.
var ErrInvalidInput = errors.New("invalid goal input")

// Slice provides access to the persisted goal settings.
type Slice interface {
	Value() Settings
	Replace(ctx context.Context, v Settings)
}

// ActivityLog records human-readable operation descriptions.
type ActivityLog interface {
	Log(ctx context.Context, text string)
}

// Service handles goal settings.
type Service struct {
	goal     Slice
	activity ActivityLog
	logger   *slog.Logger
}

// NewService creates a new goal service.
func NewService(goal Slice, activity ActivityLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{goal: goal, activity: activity, logger: logger}
}

// Set replaces the goal settings. An empty name rejects the mutation.
func (s *Service) Set(ctx context.Context, settings Settings) (Settings, error) {
	settings.Name = strings.TrimSpace(settings.Name)
	if settings.Name == "" {
		return Settings{}, ErrInvalidInput
	}

	s.goal.Replace(ctx, settings)
	s.activity.Log(ctx, fmt.Sprintf("Goal updated: %s", settings.Name))
	return settings, nil
}

// Get returns the current goal settings.
func (s *Service) Get() Settings {
	return s.goal.Value()
}
