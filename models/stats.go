package models

// DailyStats holds everything logged for one calendar day. A day that was
// never written reads back as all zeros; Weight stays nil until the user
// logs it.
type DailyStats struct {
	Steps    int      `json:"steps"`
	Water    int      `json:"water"` // glasses, 250ml each
	Calories int      `json:"calories"`
	Sleep    float64  `json:"sleep"` // hours
	Weight   *float64 `json:"weight"`
}

// StatsHistoryEntry is one day of stats pinned to its date, kept in the
// rolling history collection. At most one entry exists per date.
type StatsHistoryEntry struct {
	Date string `json:"date"` // YYYY-MM-DD, local calendar day
	DailyStats
}

// StatsHistoryLimit caps the history to the most recent entries.
const StatsHistoryLimit = 30
