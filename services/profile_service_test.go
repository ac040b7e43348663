package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/storage"
)

func TestProfileRoundTrip(t *testing.T) {
	backend := storage.NewMemoryBackend()
	s := NewProfileService(storage.New(backend), nil)

	assert.Equal(t, models.Profile{}, s.Get())

	p := models.Profile{
		Name:          "Sam",
		Email:         "sam@example.com",
		Age:           30,
		Gender:        "female",
		Height:        165,
		Weight:        60,
		ActivityLevel: "light",
		Goal:          "maintain",
	}
	s.Update(p)
	assert.Equal(t, p, s.Get())

	// a fresh service over the same backend sees the saved profile
	assert.Equal(t, p, NewProfileService(storage.New(backend), nil).Get())
}

func TestDerivedMetrics(t *testing.T) {
	s := NewProfileService(storage.New(storage.NewMemoryBackend()), nil)

	// empty profile falls back to defaults, BMI stays unknown
	d := s.Derived()
	assert.Nil(t, d.BMI)
	assert.Equal(t, 2000, d.DailyCalories)
	assert.Equal(t, 8, d.WaterGlasses)

	s.Update(models.Profile{
		Age:           30,
		Gender:        "male",
		Height:        175,
		Weight:        70,
		ActivityLevel: "moderate",
	})

	d = s.Derived()
	require.NotNil(t, d.BMI)
	assert.Equal(t, 22.9, d.BMI.Value)
	assert.Equal(t, "Normal", d.BMI.Category)
	assert.Equal(t, 2556, d.DailyCalories)
	assert.Equal(t, 9, d.WaterGlasses)
}
