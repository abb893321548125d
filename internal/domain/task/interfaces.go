package task

import "context"

// Slice provides access to the persisted task collection.
type Slice interface {
	Value() []Task
	Update(ctx context.Context, fn func([]Task) []Task)
}

// ActivityLog records human-readable operation descriptions.
type ActivityLog interface {
	Log(ctx context.Context, text string)
}
