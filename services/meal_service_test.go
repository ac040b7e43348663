package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/storage"
)

func TestMealAddAndTotals(t *testing.T) {
	cur := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	now := func() time.Time { return cur }
	s := NewMealService(storage.New(storage.NewMemoryBackend()), now, nil)

	s.Add(models.Meal{Name: "oatmeal", Calories: 320, Protein: 12, Carbs: 54, Fat: 6, MealTime: models.MealBreakfast})
	cur = cur.Add(4 * time.Hour)
	s.Add(models.Meal{Name: "chicken salad", Calories: 450, Protein: 35, Carbs: 20, Fat: 22, MealTime: models.MealLunch})

	require.Len(t, s.Today(), 2)
	totals := s.Totals()
	assert.Equal(t, 770.0, totals.Calories)
	assert.Equal(t, 47.0, totals.Protein)
	assert.Equal(t, 74.0, totals.Carbs)
	assert.Equal(t, 28.0, totals.Fat)
}

func TestMealRemove(t *testing.T) {
	cur := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	now := func() time.Time { return cur }
	s := NewMealService(storage.New(storage.NewMemoryBackend()), now, nil)

	m := s.Add(models.Meal{Name: "toast", Calories: 150, MealTime: models.MealBreakfast})
	cur = cur.Add(time.Minute)
	keep := s.Add(models.Meal{Name: "eggs", Calories: 200, MealTime: models.MealBreakfast})

	assert.True(t, s.Remove(m.ID))
	assert.False(t, s.Remove(m.ID))

	today := s.Today()
	require.Len(t, today, 1)
	assert.Equal(t, keep.ID, today[0].ID)
}

func TestMealLogRollsOverAtMidnight(t *testing.T) {
	cur := time.Date(2025, 3, 14, 21, 0, 0, 0, time.UTC)
	now := func() time.Time { return cur }
	backend := storage.NewMemoryBackend()
	s := NewMealService(storage.New(backend), now, nil)

	s.Add(models.Meal{Name: "late snack", Calories: 180, MealTime: models.MealSnack})

	cur = time.Date(2025, 3, 15, 7, 0, 0, 0, time.UTC)
	assert.Empty(t, s.Today())
	assert.Equal(t, models.NutritionTotals{}, s.Totals())

	// yesterday's log is still on disk under its own key
	cur = time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC)
	require.Len(t, s.Today(), 1)
}
