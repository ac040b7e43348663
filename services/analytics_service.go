package services

import (
	"errors"
	"math"

	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/utils"
)

// AnalyticsService derives chart series and summaries from the trackers.
// Nothing is cached: every read recomputes against the current history.
type AnalyticsService struct {
	stats    *StatsService
	moods    *MoodService
	workouts *WorkoutService
	goals    *GoalService
	now      Clock
}

func NewAnalyticsService(stats *StatsService, moods *MoodService, workouts *WorkoutService, goals *GoalService, now Clock) *AnalyticsService {
	return &AnalyticsService{stats: stats, moods: moods, workouts: workouts, goals: goals, now: now}
}

// DaySeries is one chart point; days without a history entry are
// zero-filled so the series always covers the whole range.
type DaySeries struct {
	Date     string  `json:"date"`
	Steps    int     `json:"steps"`
	Water    int     `json:"water"`
	Calories int     `json:"calories"`
	Sleep    float64 `json:"sleep"`
}

type Summary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Days []DaySeries `json:"days"`

	Totals struct {
		Steps    int     `json:"steps"`
		Water    int     `json:"water"`
		Calories int     `json:"calories"`
		Sleep    float64 `json:"sleep"`
	} `json:"totals"`

	Averages struct {
		Steps    int     `json:"steps"`
		Water    int     `json:"water"`
		Calories int     `json:"calories"`
		Sleep    float64 `json:"sleep"`
	} `json:"averages"`

	Workouts int `json:"workouts"` // sessions completed in range
	GoalsMet int `json:"goalsMet"` // days at or above the step target
	Streak   int `json:"streak"`
}

// Summary aggregates the trailing week or month of history into chart
// series plus totals and averages.
func (s *AnalyticsService) Summary(rng string) (*Summary, error) {
	var dates []string
	switch rng {
	case "week", "":
		dates = utils.WeekDates(s.now())
	case "month":
		dates = utils.MonthDates(s.now())
	default:
		return nil, errors.New("range must be 'week' or 'month'")
	}

	// index history by date so missing days zero-fill
	hist := s.stats.History()
	idx := make(map[string]models.StatsHistoryEntry, len(hist))
	for _, h := range hist {
		idx[h.Date] = h
	}

	stepTarget := s.goals.Targets().Steps

	out := &Summary{}
	out.Range.From = dates[0]
	out.Range.To = dates[len(dates)-1]

	inRange := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		inRange[date] = struct{}{}
		h := idx[date] // zero value when absent
		out.Days = append(out.Days, DaySeries{
			Date:     date,
			Steps:    h.Steps,
			Water:    h.Water,
			Calories: h.Calories,
			Sleep:    h.Sleep,
		})

		out.Totals.Steps += h.Steps
		out.Totals.Water += h.Water
		out.Totals.Calories += h.Calories
		out.Totals.Sleep += h.Sleep
		if h.Steps >= stepTarget {
			out.GoalsMet++
		}
	}

	n := len(dates)
	out.Averages.Steps = out.Totals.Steps / n
	out.Averages.Water = out.Totals.Water / n
	out.Averages.Calories = out.Totals.Calories / n
	out.Averages.Sleep = round1(out.Totals.Sleep / float64(n))

	for _, w := range s.workouts.All() {
		if _, ok := inRange[w.CompletedAt.Format(utils.DateLayout)]; ok {
			out.Workouts++
		}
	}

	out.Streak = s.Streak()
	return out, nil
}

// Streak counts consecutive days with a stats history entry, ending today.
func (s *AnalyticsService) Streak() int {
	hist := s.stats.History()
	dates := make([]string, 0, len(hist))
	for _, h := range hist {
		dates = append(dates, h.Date)
	}
	return utils.CalculateStreak(dates, s.now())
}

var moodLabels = map[int]string{
	1: "Stressed",
	2: "Low",
	3: "Okay",
	4: "Good",
	5: "Excellent",
}

type MoodBucket struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MoodDistribution buckets every mood entry by its 1..5 value.
func (s *AnalyticsService) MoodDistribution() []MoodBucket {
	counts := make(map[int]int)
	for _, m := range s.moods.All() {
		counts[m.Mood]++
	}

	buckets := make([]MoodBucket, 0, 5)
	for v := 1; v <= 5; v++ {
		buckets = append(buckets, MoodBucket{Value: v, Label: moodLabels[v], Count: counts[v]})
	}
	return buckets
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
