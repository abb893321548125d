package cost

import "time"

// Period is the billing cadence of a cost item.
type Period string

const (
	PeriodMonthly Period = "mo"
	PeriodYearly  Period = "yr"
)

// Valid reports whether p is a known billing period.
func (p Period) Valid() bool {
	return p == PeriodMonthly || p == PeriodYearly
}

// Item is one recurring cost line. Amount is assumed non-negative but is
// not validated at write time.
type Item struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Period    Period    `json:"period"`
	CreatedAt time.Time `json:"created_at"`
}
