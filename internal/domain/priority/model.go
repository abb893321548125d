package priority

import "time"

// Priority is one checklist entry on the dashboard.
type Priority struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}
