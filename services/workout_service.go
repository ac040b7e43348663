package services

import (
	"sync"

	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/storage"
	"github.com/Uviii9p/Health-Hub/utils"
)

const workoutsKey = "completed-workouts"

// WorkoutService keeps the append-only log of finished sessions.
type WorkoutService struct {
	mu    sync.Mutex
	store *storage.Store
	now   Clock
	hub   *EventHub
}

func NewWorkoutService(store *storage.Store, now Clock, hub *EventHub) *WorkoutService {
	return &WorkoutService{store: store, now: now, hub: hub}
}

func (s *WorkoutService) load() []models.CompletedWorkout {
	var list []models.CompletedWorkout
	s.store.Load(workoutsKey, &list)
	return list
}

func (s *WorkoutService) All() []models.CompletedWorkout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Complete records a finished session.
func (s *WorkoutService) Complete(w models.CompletedWorkout) models.CompletedWorkout {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w.ID = now.UnixMilli()
	w.CompletedAt = now

	s.store.Save(workoutsKey, append(s.load(), w))
	s.hub.Publish("workout.completed", w)
	return w
}

// TodayWorkouts returns the sessions finished on the current local day.
func (s *WorkoutService) TodayWorkouts() []models.CompletedWorkout {
	today := s.now().Format(utils.DateLayout)
	out := []models.CompletedWorkout{}
	for _, w := range s.All() {
		if w.CompletedAt.Format(utils.DateLayout) == today {
			out = append(out, w)
		}
	}
	return out
}

// WeekWorkouts returns the sessions from the trailing seven days.
func (s *WorkoutService) WeekWorkouts() []models.CompletedWorkout {
	weekAgo := s.now().AddDate(0, 0, -7)
	out := []models.CompletedWorkout{}
	for _, w := range s.All() {
		if !w.CompletedAt.Before(weekAgo) {
			out = append(out, w)
		}
	}
	return out
}
