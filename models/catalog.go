package models

// Built-in read-only content served by the catalog: workout programs, meal
// suggestions, breathing exercises, mood options, quotes and tips.

type WorkoutProgram struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Duration   int        `json:"duration"` // minutes
	Calories   int        `json:"calories"`
	Difficulty string     `json:"difficulty"`
	Category   string     `json:"category"`
	Exercises  []Exercise `json:"exercises"`
}

type MealSuggestion struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	MealTime    MealTime `json:"mealTime"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Image       string   `json:"image"`
	Ingredients []string `json:"ingredients"`
}

// BreathingPattern gives the phase lengths in seconds. A zero hold means
// the phase is skipped.
type BreathingPattern struct {
	Inhale int `json:"inhale"`
	Hold1  int `json:"hold1"`
	Exhale int `json:"exhale"`
	Hold2  int `json:"hold2"`
}

type BreathingExercise struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Duration    int              `json:"duration"` // suggested minutes
	Description string           `json:"description"`
	Pattern     BreathingPattern `json:"pattern"`
	Benefits    string           `json:"benefits"`
}

type MoodOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
