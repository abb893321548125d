package client

import "time"

// Status is the engagement state of a client. Only active clients count
// toward revenue metrics.
type Status string

const (
	StatusActive  Status = "active"
	StatusPending Status = "pending"
	StatusChurned Status = "churned"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusChurned:
		return true
	}
	return false
}

// Client is one recurring-revenue relationship. Start is the ISO calendar
// date the engagement began.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	MRR       float64   `json:"mrr"`
	Status    Status    `json:"status"`
	Start     string    `json:"start_iso"`
	CreatedAt time.Time `json:"created_at"`
}
