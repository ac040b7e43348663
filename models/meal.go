package models

import "time"

type MealTime string

const (
	MealBreakfast MealTime = "breakfast"
	MealLunch     MealTime = "lunch"
	MealDinner    MealTime = "dinner"
	MealSnack     MealTime = "snack"
)

// Meal is a logged meal with its macro snapshot. Meals are scoped to the
// day they were logged; yesterday's meals live under yesterday's key.
type Meal struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name" validate:"required"`
	Calories  float64   `json:"calories" validate:"min=0"`
	Protein   float64   `json:"protein" validate:"min=0"`
	Carbs     float64   `json:"carbs" validate:"min=0"`
	Fat       float64   `json:"fat" validate:"min=0"`
	MealTime  MealTime  `json:"mealTime" validate:"oneof=breakfast lunch dinner snack"`
	Image     string    `json:"image"` // display glyph
}

func (m *Meal) Validate() error {
	return validate.Struct(m)
}

// NutritionTotals sums the macros of a set of meals.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
