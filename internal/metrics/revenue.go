package metrics

import (
	"time"

	"opsdeck/internal/domain/client"
)

// RevenueMonths is the trailing window length of the revenue series.
const RevenueMonths = 6

// RevenuePoint is one month bucket in the revenue series.
type RevenuePoint struct {
	Label string  `json:"label"`
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// MRR sums monthly recurring revenue over active clients only.
func MRR(clients []client.Client) float64 {
	total := 0.0
	for _, c := range clients {
		if c.Status == client.StatusActive {
			total += c.MRR
		}
	}
	return total
}

// RevenueSeries builds the trailing six-month revenue series ending at
// the current month, oldest bucket first. An active client contributes
// its MRR to every bucket on or after its start month. Status is read as
// of call time, not per historical month: a client churned today drops
// out of all buckets, a known simplification of the original design.
func RevenueSeries(clients []client.Client, now time.Time) []RevenuePoint {
	points := make([]RevenuePoint, 0, RevenueMonths)
	for i := RevenueMonths - 1; i >= 0; i-- {
		month := monthStart(now, -i)
		total := 0.0
		for _, c := range clients {
			if c.Status != client.StatusActive {
				continue
			}
			start, err := time.ParseInLocation("2006-01-02", c.Start, now.Location())
			if err != nil {
				continue
			}
			if !month.Before(monthStart(start, 0)) {
				total += c.MRR
			}
		}
		points = append(points, RevenuePoint{
			Label: month.Format("Jan"),
			Month: month.Format("2006-01"),
			Total: total,
		})
	}
	return points
}

// monthStart returns the first instant of the month offset months away
// from t's month.
func monthStart(t time.Time, offset int) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+time.Month(offset), 1, 0, 0, 0, 0, t.Location())
}
