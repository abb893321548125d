package activity

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Slice provides access to the persisted activity log collection.
type Slice interface {
	Value() []Item
	Update(ctx context.Context, fn func([]Item) []Item)
}

// Service handles activity log operations.
type Service struct {
	slice  Slice
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new activity service.
func NewService(slice Slice, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{slice: slice, logger: logger, now: time.Now}
}

// Log prepends a human-readable entry, trimming the log to MaxEntries.
// Empty text is silently dropped.
func (s *Service) Log(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	entry := Item{
		ID:   uuid.NewString(),
		TS:   s.now(),
		Text: text,
	}

	s.slice.Update(ctx, func(prev []Item) []Item {
		next := make([]Item, 0, len(prev)+1)
		next = append(next, entry)
		next = append(next, prev...)
		if len(next) > MaxEntries {
			next = next[:MaxEntries]
		}
		return next
	})
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns the whole log.
func (s *Service) Recent(limit int) []Item {
	items := s.slice.Value()
	if items == nil {
		return []Item{}
	}
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
