package goal

// Settings holds the countdown goal shown on the dashboard header.
// Percent is conceptually clamped to [0,100] at display time, not here.
type Settings struct {
	Name    string `json:"name"`
	Percent int    `json:"goal_percent"`
	Date    string `json:"goal_date_iso"`
}
