package task

import "time"

// Priority represents task urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Column represents the kanban work stage a task sits in. It is the sole
// grouping key for board views.
type Column string

const (
	ColumnBacklog    Column = "backlog"
	ColumnInProgress Column = "in_progress"
	ColumnDone       Column = "done"
)

// Columns lists the fixed board columns in display order.
var Columns = []Column{ColumnBacklog, ColumnInProgress, ColumnDone}

// Valid reports whether c is one of the fixed board columns.
func (c Column) Valid() bool {
	switch c {
	case ColumnBacklog, ColumnInProgress, ColumnDone:
		return true
	}
	return false
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task is one card on the board.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	Column      Column    `json:"column"`
	CreatedAt   time.Time `json:"created_at"`
}
