package metrics

import "time"

// DaysToGoal returns the number of whole days from now until the goal
// date interpreted at local midnight, rounded up and floored at zero. An
// unparseable or empty date yields zero.
func DaysToGoal(goalDate string, now time.Time) int {
	parsed, err := time.ParseInLocation("2006-01-02", goalDate, now.Location())
	if err != nil {
		return 0
	}

	diff := parsed.Sub(now)
	if diff <= 0 {
		return 0
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}
