package services

import (
	"sync"

	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/storage"
	"github.com/Uviii9p/Health-Hub/utils"
)

// MealService owns the current day's meal log. The collection is scoped to
// the day it was written: at midnight the key rolls over and the log starts
// empty again.
type MealService struct {
	mu    sync.Mutex
	store *storage.Store
	now   Clock
	hub   *EventHub
}

func NewMealService(store *storage.Store, now Clock, hub *EventHub) *MealService {
	return &MealService{store: store, now: now, hub: hub}
}

func mealsKey(date string) string { return "meals-" + date }

func (s *MealService) load() []models.Meal {
	var list []models.Meal
	s.store.Load(mealsKey(s.now().Format(utils.DateLayout)), &list)
	return list
}

// Today returns the meals logged on the current local day.
func (s *MealService) Today() []models.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *MealService) Add(m models.Meal) models.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	m.ID = now.UnixMilli()
	m.Timestamp = now

	s.store.Save(mealsKey(now.Format(utils.DateLayout)), append(s.load(), m))
	s.hub.Publish("meal.added", m)
	return m
}

func (s *MealService) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			s.store.Save(mealsKey(s.now().Format(utils.DateLayout)), list)
			s.hub.Publish("meal.removed", id)
			return true
		}
	}
	return false
}

// Totals sums the macros of today's meals.
func (s *MealService) Totals() models.NutritionTotals {
	var t models.NutritionTotals
	for _, m := range s.Today() {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}
