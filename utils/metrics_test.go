package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	assert.Nil(t, CalculateBMI(0, 175))
	assert.Nil(t, CalculateBMI(70, 0))

	cases := []struct {
		name     string
		weight   float64
		height   float64
		value    float64
		category string
	}{
		{"underweight", 50, 200, 12.5, "Underweight"},
		{"normal", 70, 175, 22.9, "Normal"},
		{"overweight", 90, 175, 29.4, "Overweight"},
		{"obese", 110, 175, 35.9, "Obese"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := CalculateBMI(tc.weight, tc.height)
			require.NotNil(t, res)
			assert.Equal(t, tc.value, res.Value)
			assert.Equal(t, tc.category, res.Category)
			assert.NotEmpty(t, res.Color)
		})
	}
}

func TestCalculateBMIBoundaries(t *testing.T) {
	// banding compares the unrounded value: 18.5 exactly is Normal
	res := CalculateBMI(18.5*1.75*1.75, 175)
	require.NotNil(t, res)
	assert.Equal(t, "Normal", res.Category)

	res = CalculateBMI(30*1.75*1.75, 175)
	require.NotNil(t, res)
	assert.Equal(t, "Obese", res.Category)
}

func TestCalculateDailyCalories(t *testing.T) {
	// round((10*70 + 6.25*175 - 5*30 + 5) * 1.55) = round(2555.5625)
	got := CalculateDailyCalories(CalorieParams{
		Weight: 70, Height: 175, Age: 30, Gender: "male", ActivityLevel: "moderate",
	})
	assert.Equal(t, 2556, got)

	// non-male subtracts 161
	got = CalculateDailyCalories(CalorieParams{
		Weight: 70, Height: 175, Age: 30, Gender: "female", ActivityLevel: "moderate",
	})
	assert.Equal(t, 2298, got)

	// missing inputs fall back to 2000
	assert.Equal(t, 2000, CalculateDailyCalories(CalorieParams{Height: 175, Age: 30}))
	assert.Equal(t, 2000, CalculateDailyCalories(CalorieParams{}))

	// unknown activity level counts as moderate
	assert.Equal(t, 2556, CalculateDailyCalories(CalorieParams{
		Weight: 70, Height: 175, Age: 30, Gender: "male", ActivityLevel: "bogus",
	}))
}

func TestCalculateWaterIntake(t *testing.T) {
	assert.Equal(t, 8, CalculateWaterIntake(0))
	assert.Equal(t, 9, CalculateWaterIntake(70)) // round(70*33/250) = round(9.24)
	assert.Equal(t, 13, CalculateWaterIntake(100))
}

func TestCalculatePercentage(t *testing.T) {
	assert.Equal(t, 0, CalculatePercentage(5, 0))
	assert.Equal(t, 50, CalculatePercentage(5, 10))
	assert.Equal(t, 100, CalculatePercentage(15, 10)) // capped
	assert.Equal(t, -50, CalculatePercentage(-5, 10)) // no lower cap
}

func TestWeekDates(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)
	dates := WeekDates(now)
	require.Len(t, dates, 7)
	assert.Equal(t, "2025-03-08", dates[0])
	assert.Equal(t, "2025-03-14", dates[6])
	for i := 1; i < len(dates); i++ {
		assert.Greater(t, dates[i], dates[i-1])
	}
}

func TestMonthDates(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)
	dates := MonthDates(now)
	require.Len(t, dates, 30)
	assert.Equal(t, "2025-02-13", dates[0])
	assert.Equal(t, "2025-03-14", dates[29])
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 min", FormatDuration(45))
	assert.Equal(t, "1h", FormatDuration(60))
	assert.Equal(t, "1h 30m", FormatDuration(90))
}
