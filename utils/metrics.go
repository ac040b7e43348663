package utils

import (
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// BMIResult carries the rounded value plus the band it falls in and the
// color the dashboard renders it with.
type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
}

// CalculateBMI expects weight in kilograms and height in centimeters.
// Returns nil when either input is missing. The band is chosen from the
// unrounded value; only the reported value is rounded to one decimal.
func CalculateBMI(weightKg, heightCm float64) *BMIResult {
	if weightKg <= 0 || heightCm <= 0 {
		return nil
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)

	var category, color string
	switch {
	case bmi < 18.5:
		category, color = "Underweight", "#2196f3"
	case bmi < 25.0:
		category, color = "Normal", "#4caf50"
	case bmi < 30.0:
		category, color = "Overweight", "#ff9800"
	default:
		category, color = "Obese", "#f44336"
	}

	return &BMIResult{
		Value:    math.Round(bmi*10) / 10,
		Category: category,
		Color:    color,
	}
}

// CalorieParams are the inputs to the Mifflin-St Jeor estimate.
type CalorieParams struct {
	Weight        float64 // kg
	Height        float64 // cm
	Age           int
	Gender        string
	ActivityLevel string
}

var activityMultipliers = map[string]float64{
	"sedentary":  1.2,
	"light":      1.375,
	"moderate":   1.55,
	"active":     1.725,
	"veryActive": 1.9,
}

// CalculateDailyCalories estimates daily calorie needs via Mifflin-St Jeor.
// Falls back to 2000 when weight, height or age is missing. An unknown
// activity level counts as moderate.
func CalculateDailyCalories(p CalorieParams) int {
	if p.Weight <= 0 || p.Height <= 0 || p.Age <= 0 {
		return 2000
	}

	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = 1.55
	}
	return int(math.Round(bmr * mult))
}

// CalculateWaterIntake recommends glasses (250ml) per day from ~33ml/kg.
// Returns 8 when weight is missing.
func CalculateWaterIntake(weightKg float64) int {
	if weightKg <= 0 {
		return 8
	}
	mlNeeded := weightKg * 33
	return int(math.Round(mlNeeded / 250))
}

// CalculatePercentage returns value/total as a percentage capped at 100.
// A missing total yields 0. There is no lower cap: negative values round
// through unchanged.
func CalculatePercentage(value, total float64) int {
	if total == 0 {
		return 0
	}
	p := int(math.Round(value / total * 100))
	if p > 100 {
		return 100
	}
	return p
}

// WeekDates returns the past 7 local calendar days ascending, ending today.
func WeekDates(now time.Time) []string {
	return trailingDates(now, 7)
}

// MonthDates returns the past 30 local calendar days ascending, ending today.
func MonthDates(now time.Time) []string {
	return trailingDates(now, 30)
}

func trailingDates(now time.Time, n int) []string {
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, now.AddDate(0, 0, -i).Format(DateLayout))
	}
	return dates
}

// FormatDuration renders minutes as "45 min", "2h" or "1h 30m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h, m := minutes/60, minutes%60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}
