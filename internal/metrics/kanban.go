// Package metrics implements the derived aggregation engine: pure
// functions recomputed from current slice values. Nothing here persists
// anything.
package metrics

import (
	"sort"

	"opsdeck/internal/domain/task"
)

// Board is the kanban view: tasks partitioned by column, newest first
// within each column.
type Board struct {
	Backlog    []task.Task `json:"backlog"`
	InProgress []task.Task `json:"in_progress"`
	Done       []task.Task `json:"done"`
}

// GroupTasks partitions tasks into the three fixed columns. Within each
// column tasks are ordered by creation time descending; equal timestamps
// keep their input order.
func GroupTasks(tasks []task.Task) Board {
	board := Board{
		Backlog:    []task.Task{},
		InProgress: []task.Task{},
		Done:       []task.Task{},
	}
	for _, t := range tasks {
		switch t.Column {
		case task.ColumnInProgress:
			board.InProgress = append(board.InProgress, t)
		case task.ColumnDone:
			board.Done = append(board.Done, t)
		default:
			board.Backlog = append(board.Backlog, t)
		}
	}

	for _, bucket := range [][]task.Task{board.Backlog, board.InProgress, board.Done} {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].CreatedAt.After(bucket[j].CreatedAt)
		})
	}
	return board
}
