package services

import (
	"fmt"
	"math"
	"sync"

	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/storage"
	"github.com/Uviii9p/Health-Hub/utils"
)

const historyKey = "stats-history"

// StatsService tracks the current day's stats under a date-scoped key and
// mirrors every mutation into the rolling history. Reading a day that was
// never written yields zero defaults; days are never deleted, just
// superseded by the next day's key.
type StatsService struct {
	mu    sync.Mutex
	store *storage.Store
	now   Clock
	hub   *EventHub
}

func NewStatsService(store *storage.Store, now Clock, hub *EventHub) *StatsService {
	return &StatsService{store: store, now: now, hub: hub}
}

func statsKey(date string) string { return "stats-" + date }

func (s *StatsService) today() string { return s.now().Format(utils.DateLayout) }

// Today returns the current day's stats.
func (s *StatsService) Today() models.DailyStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *StatsService) load() models.DailyStats {
	var st models.DailyStats
	s.store.Load(statsKey(s.today()), &st)
	return st
}

// UpdateStat sets one field of today's stats.
func (s *StatsService) UpdateStat(field string, value float64) (models.DailyStats, error) {
	return s.mutate(field, value, false)
}

// IncrementStat adds amount (possibly negative) to one field of today's
// stats. Fields never go below zero.
func (s *StatsService) IncrementStat(field string, amount float64) (models.DailyStats, error) {
	return s.mutate(field, amount, true)
}

func (s *StatsService) mutate(field string, value float64, add bool) (models.DailyStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load()
	if err := applyStat(&st, field, value, add); err != nil {
		return st, err
	}

	date := s.today()
	s.store.Save(statsKey(date), st)
	s.syncHistory(date, st)
	s.hub.Publish("stats.updated", st)
	return st, nil
}

func applyStat(st *models.DailyStats, field string, v float64, add bool) error {
	switch field {
	case "steps":
		st.Steps = applyInt(st.Steps, v, add)
	case "water":
		st.Water = applyInt(st.Water, v, add)
	case "calories":
		st.Calories = applyInt(st.Calories, v, add)
	case "sleep":
		if add {
			v += st.Sleep
		}
		st.Sleep = math.Max(v, 0)
	case "weight":
		if add && st.Weight != nil {
			v += *st.Weight
		}
		st.Weight = &v
	default:
		return fmt.Errorf("unknown stat field %q", field)
	}
	return nil
}

func applyInt(cur int, v float64, add bool) int {
	n := int(math.Round(v))
	if add {
		n += cur
	}
	if n < 0 {
		n = 0
	}
	return n
}

// syncHistory upserts today's entry: an existing same-date entry is
// replaced in place, otherwise the entry is appended and the window
// truncated to the most recent 30. A day first enters history only once
// something was actually logged.
func (s *StatsService) syncHistory(date string, st models.DailyStats) {
	var hist []models.StatsHistoryEntry
	s.store.Load(historyKey, &hist)

	entry := models.StatsHistoryEntry{Date: date, DailyStats: st}
	for i := range hist {
		if hist[i].Date == date {
			hist[i] = entry
			s.store.Save(historyKey, hist)
			return
		}
	}

	if st.Steps == 0 && st.Water == 0 {
		return
	}
	hist = append(hist, entry)
	if len(hist) > models.StatsHistoryLimit {
		hist = hist[len(hist)-models.StatsHistoryLimit:]
	}
	s.store.Save(historyKey, hist)
}

// History returns the rolling window, oldest first.
func (s *StatsService) History() []models.StatsHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var hist []models.StatsHistoryEntry
	s.store.Load(historyKey, &hist)
	return hist
}
