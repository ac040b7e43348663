package models

import "time"

// MoodEntry is append-only; there is no update or delete.
// Mood runs 1 (stressed) to 5 (excellent).
type MoodEntry struct {
	ID        int64     `json:"id"`
	Mood      int       `json:"mood" validate:"min=1,max=5"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *MoodEntry) Validate() error {
	return validate.Struct(m)
}

// Date returns the local calendar day of the entry.
func (m MoodEntry) Date() string {
	return m.Timestamp.Format("2006-01-02")
}
