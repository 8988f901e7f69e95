package models

import "time"

// DefaultCalTarget is the daily calorie target used when no profile sets one
const DefaultCalTarget = 2000

// StatsSnapshot holds the facts read from the nutrition database for one run
type StatsSnapshot struct {
	TotalMeals    int    `json:"total_meals"`
	MealsToday    int    `json:"meals_today"`
	ProfileExists bool   `json:"profile_exists"`
	CalTarget     int    `json:"cal_target"`
	ProfileName   string `json:"profile_name"`
}

// DefaultSnapshot returns the snapshot reported when the database is unusable
func DefaultSnapshot() StatsSnapshot {
	return StatsSnapshot{CalTarget: DefaultCalTarget}
}

// ProfileConfigured renders ProfileExists the way the status block shows it
func (s StatsSnapshot) ProfileConfigured() string {
	if s.ProfileExists {
		return "Yes"
	}
	return "No"
}

// Report bundles everything gathered in a single run
type Report struct {
	Stats       StatsSnapshot `json:"stats"`
	Server      ServerStatus  `json:"server"`
	Endpoints   int           `json:"endpoints"`
	GeneratedAt time.Time     `json:"generated_at"`
}
