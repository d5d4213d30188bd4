package ai

// Draft is a generated lesson sheet.
type Draft struct {
	Title      string     `json:"title"`
	Summary    string     `json:"summary"`
	Objectives []string   `json:"objectives"`
	Activities []Activity `json:"activities"`
	Virtues    []string   `json:"virtues"`
}

// Activity is one timed step of a drafted lesson.
type Activity struct {
	Name        string `json:"name"`
	Minutes     int    `json:"minutes"`
	Description string `json:"description"`
}

// TotalMinutes sums the activity durations.
func (d *Draft) TotalMinutes() int {
	total := 0
	for _, a := range d.Activities {
		total += a.Minutes
	}
	return total
}
