package models

import "time"

type Exercise struct {
	Name string `json:"name"`
	Reps string `json:"reps"` // free-form: "15 reps", "30 sec each"
}

// CompletedWorkout is one finished session in the append-only workout log.
type CompletedWorkout struct {
	ID          int64      `json:"id"`
	CompletedAt time.Time  `json:"completedAt"`
	Name        string     `json:"name" validate:"required"`
	Duration    int        `json:"duration" validate:"min=0"` // minutes
	Calories    int        `json:"calories" validate:"min=0"`
	Difficulty  string     `json:"difficulty"`
	Category    string     `json:"category"`
	Exercises   []Exercise `json:"exercises"`
}

func (w *CompletedWorkout) Validate() error {
	return validate.Struct(w)
}
