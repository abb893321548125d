package calendar

import "time"

// Event is one scheduled entry. When is stored as an ISO 8601 string the
// way the presentation layer supplies it; it is not interpreted by the core.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	When      string    `json:"when_iso"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
