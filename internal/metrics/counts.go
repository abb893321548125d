package metrics

import (
	"time"

	"opsdeck/internal/domain/task"
)

// TasksCreatedToday counts tasks whose creation instant falls on the
// same local calendar date as now.
func TasksCreatedToday(tasks []task.Task, now time.Time) int {
	ny, nm, nd := now.Date()
	count := 0
	for _, t := range tasks {
		y, m, d := t.CreatedAt.In(now.Location()).Date()
		if y == ny && m == nm && d == nd {
			count++
		}
	}
	return count
}

// ActiveProjects counts tasks not yet in the done column.
func ActiveProjects(tasks []task.Task) int {
	count := 0
	for _, t := range tasks {
		if t.Column != task.ColumnDone {
			count++
		}
	}
	return count
}
