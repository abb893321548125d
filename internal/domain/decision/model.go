package decision

import "time"

// Decision is one recorded judgment call. Consulted holds agent display
// names copied at write time; it is an audit annotation, not a foreign
// key, so renaming an agent never rewrites past decisions.
type Decision struct {
	ID        string    `json:"id"`
	Date      string    `json:"date_iso"`
	Question  string    `json:"question"`
	Summary   string    `json:"summary"`
	Consulted []string  `json:"consulted,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
