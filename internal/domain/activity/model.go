package activity

import "time"

// MaxEntries caps the log at the most recent entries.
const MaxEntries = 60

// Item is one human-readable event in the activity log.
type Item struct {
	ID   string    `json:"id"`
	TS   time.Time `json:"ts"`
	Text string    `json:"text"`
}
