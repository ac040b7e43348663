package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/storage"
)

func TestWorkoutComplete(t *testing.T) {
	at := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
	s := NewWorkoutService(storage.New(storage.NewMemoryBackend()), fixedClock(at), nil)

	w := s.Complete(models.CompletedWorkout{
		Name:     "Full Body Strength",
		Duration: 30,
		Calories: 250,
		Category: "strength",
		Exercises: []models.Exercise{
			{Name: "Squats", Reps: "15 reps"},
			{Name: "Plank", Reps: "30 sec"},
		},
	})

	assert.Equal(t, at.UnixMilli(), w.ID)
	assert.Equal(t, at, w.CompletedAt)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Full Body Strength", all[0].Name)
	require.Len(t, all[0].Exercises, 2)
	assert.Equal(t, "30 sec", all[0].Exercises[1].Reps)
}

func TestWorkoutTodayAndWeekWindows(t *testing.T) {
	cur := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	now := func() time.Time { return cur }
	s := NewWorkoutService(storage.New(storage.NewMemoryBackend()), now, nil)

	s.Complete(models.CompletedWorkout{Name: "old", Duration: 20})
	cur = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	s.Complete(models.CompletedWorkout{Name: "midweek", Duration: 25})
	cur = time.Date(2025, 3, 14, 7, 0, 0, 0, time.UTC)
	s.Complete(models.CompletedWorkout{Name: "morning", Duration: 15})

	cur = time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)

	today := s.TodayWorkouts()
	require.Len(t, today, 1)
	assert.Equal(t, "morning", today[0].Name)

	week := s.WeekWorkouts()
	require.Len(t, week, 2)
	assert.Equal(t, "midweek", week[0].Name)
	assert.Equal(t, "morning", week[1].Name)
}
