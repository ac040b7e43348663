package services

import (
	"sync"

	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/storage"
	"github.com/Uviii9p/Health-Hub/utils"
)

const moodsKey = "moods"

// MoodService keeps an append-only mood journal. Entries are never updated
// or deleted.
type MoodService struct {
	mu    sync.Mutex
	store *storage.Store
	now   Clock
	hub   *EventHub
}

func NewMoodService(store *storage.Store, now Clock, hub *EventHub) *MoodService {
	return &MoodService{store: store, now: now, hub: hub}
}

func (s *MoodService) load() []models.MoodEntry {
	var list []models.MoodEntry
	s.store.Load(moodsKey, &list)
	return list
}

func (s *MoodService) All() []models.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *MoodService) Add(mood int, note string) models.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := models.MoodEntry{
		ID:        now.UnixMilli(),
		Mood:      mood,
		Note:      note,
		Timestamp: now,
	}
	s.store.Save(moodsKey, append(s.load(), entry))
	s.hub.Publish("mood.added", entry)
	return entry
}

// TodayMoods returns the entries logged on the current local day.
func (s *MoodService) TodayMoods() []models.MoodEntry {
	today := s.now().Format(utils.DateLayout)
	out := []models.MoodEntry{}
	for _, m := range s.All() {
		if m.Date() == today {
			out = append(out, m)
		}
	}
	return out
}

// WeekMoods returns the entries from the trailing seven days.
func (s *MoodService) WeekMoods() []models.MoodEntry {
	weekAgo := s.now().AddDate(0, 0, -7)
	out := []models.MoodEntry{}
	for _, m := range s.All() {
		if !m.Timestamp.Before(weekAgo) {
			out = append(out, m)
		}
	}
	return out
}
