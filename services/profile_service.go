package services

import (
	"sync"

	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/storage"
	"github.com/Uviii9p/Health-Hub/utils"
)

const profileKey = "profile"

// ProfileService persists the user profile and exposes the metrics derived
// from it.
type ProfileService struct {
	mu    sync.Mutex
	store *storage.Store
	hub   *EventHub
}

func NewProfileService(store *storage.Store, hub *EventHub) *ProfileService {
	return &ProfileService{store: store, hub: hub}
}

func (s *ProfileService) Get() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	var p models.Profile
	s.store.Load(profileKey, &p)
	return p
}

// Update replaces the whole profile record.
func (s *ProfileService) Update(p models.Profile) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Save(profileKey, p)
	s.hub.Publish("profile.updated", p)
	return p
}

// DerivedMetrics are recomputed from the profile on every read.
type DerivedMetrics struct {
	BMI           *utils.BMIResult `json:"bmi"`
	DailyCalories int              `json:"dailyCalories"`
	WaterGlasses  int              `json:"waterGlasses"`
}

func (s *ProfileService) Derived() DerivedMetrics {
	p := s.Get()
	return DerivedMetrics{
		BMI:           utils.CalculateBMI(p.Weight, p.Height),
		DailyCalories: utils.CalculateDailyCalories(utils.CalorieParams{
			Weight:        p.Weight,
			Height:        p.Height,
			Age:           p.Age,
			Gender:        p.Gender,
			ActivityLevel: p.ActivityLevel,
		}),
		WaterGlasses: utils.CalculateWaterIntake(p.Weight),
	}
}
