package agent

import "time"

// MaxActivity caps each agent's own activity feed.
const MaxActivity = 50

// Status is the simulated availability of an agent.
type Status string

const (
	StatusOnline  Status = "online"
	StatusBusy    Status = "busy"
	StatusOffline Status = "offline"
)

// Event is one entry in an agent's activity feed, newest first.
type Event struct {
	ID   string    `json:"id"`
	TS   time.Time `json:"ts"`
	Text string    `json:"text"`
}

// Agent is one assistant shown on the agents view.
type Agent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Status       Status    `json:"status"`
	Model        string    `json:"model"`
	LastActive   time.Time `json:"last_active"`
	Description  string    `json:"description,omitempty"`
	Capabilities []string  `json:"capabilities,omitempty"`
	Activity     []Event   `json:"activity,omitempty"`
	PerfNotes    string    `json:"perf_notes,omitempty"`
}

// Seed returns the fixed sample agents installed on first run.
func Seed(now time.Time) []Agent {
	return []Agent{
		{
			ID:           "agent-scout",
			Name:         "Scout",
			Role:         "Research",
			Status:       StatusOnline,
			Model:        "gpt-4o",
			LastActive:   now,
			Description:  "Digs through sources and summarizes what matters.",
			Capabilities: []string{"web research", "summarization", "fact checking"},
		},
		{
			ID:           "agent-ledger",
			Name:         "Ledger",
			Role:         "Finance",
			Status:       StatusOnline,
			Model:        "claude-sonnet",
			LastActive:   now,
			Description:  "Watches costs and revenue, flags anomalies.",
			Capabilities: []string{"cost analysis", "forecasting", "reporting"},
		},
		{
			ID:           "agent-quill",
			Name:         "Quill",
			Role:         "Writing",
			Status:       StatusOffline,
			Model:        "gpt-4o-mini",
			LastActive:   now,
			Description:  "Drafts client updates and internal notes.",
			Capabilities: []string{"drafting", "editing", "tone matching"},
		},
	}
}
