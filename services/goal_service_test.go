package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uviii9p/Health-Hub/models"
)

func TestTargetsFallBackWithoutProfile(t *testing.T) {
	f := newFixture(fixedClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)))

	targets := f.goals.Targets()
	assert.Equal(t, 10000, targets.Steps)
	assert.Equal(t, 8, targets.Water)
	assert.Equal(t, 2000, targets.Calories)
	assert.Equal(t, 8.0, targets.Sleep)
	assert.Equal(t, 60.0, targets.Protein)
}

func TestTargetsTrackProfile(t *testing.T) {
	f := newFixture(fixedClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)))

	f.profile.Update(models.Profile{
		Name:          "Sam",
		Age:           30,
		Gender:        "male",
		Height:        175,
		Weight:        70,
		ActivityLevel: "moderate",
	})

	targets := f.goals.Targets()
	assert.Equal(t, 9, targets.Water, "70kg at 33ml/kg in 250ml glasses")
	assert.Equal(t, 2556, targets.Calories)
}

func TestTodayProgress(t *testing.T) {
	f := newFixture(fixedClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)))

	_, err := f.stats.UpdateStat("steps", 5000)
	require.NoError(t, err)
	_, err = f.stats.UpdateStat("water", 4)
	require.NoError(t, err)
	_, err = f.stats.UpdateStat("sleep", 6)
	require.NoError(t, err)
	f.meals.Add(models.Meal{Name: "pasta", Calories: 600, Protein: 20, Carbs: 80, Fat: 15, MealTime: models.MealDinner})

	prog := f.goals.TodayProgress()

	steps := prog["steps"]
	assert.Equal(t, 5000.0, steps.Consumed)
	assert.Equal(t, 10000.0, steps.Goal)
	assert.Equal(t, 50, steps.Percent)

	assert.Equal(t, 50, prog["water"].Percent, "4 of 8 glasses")
	assert.Equal(t, 30, prog["calories"].Percent, "600 of the 2000 fallback")
	assert.Equal(t, 75, prog["sleep"].Percent)
	assert.Equal(t, 33, prog["protein"].Percent)
	assert.Equal(t, 32, prog["carbs"].Percent)
	assert.Equal(t, 23, prog["fat"].Percent)
}

func TestTodayProgressCapsAtHundred(t *testing.T) {
	f := newFixture(fixedClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)))

	_, err := f.stats.UpdateStat("steps", 15000)
	require.NoError(t, err)

	assert.Equal(t, 100, f.goals.TodayProgress()["steps"].Percent)
}
