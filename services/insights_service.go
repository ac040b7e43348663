package services

import "fmt"

// Insight is one short observation rendered as a card on the analytics
// page.
type Insight struct {
	Kind    string `json:"kind"` // steps | water | sleep | workouts | mood | streak
	Title   string `json:"title"`
	Message string `json:"message"`
}

// InsightsService turns the weekly summary into plain-language
// observations.
type InsightsService struct {
	analytics *AnalyticsService
	moods     *MoodService
	goals     *GoalService
}

func NewInsightsService(analytics *AnalyticsService, moods *MoodService, goals *GoalService) *InsightsService {
	return &InsightsService{analytics: analytics, moods: moods, goals: goals}
}

// Weekly builds the insight cards for the trailing seven days.
func (s *InsightsService) Weekly() ([]Insight, error) {
	sum, err := s.analytics.Summary("week")
	if err != nil {
		return nil, err
	}
	targets := s.goals.Targets()

	var insights []Insight

	if sum.GoalsMet > 0 {
		insights = append(insights, Insight{
			Kind:    "steps",
			Title:   "Step goal",
			Message: fmt.Sprintf("You've exceeded your daily step goal %d times this week. Keep up the momentum!", sum.GoalsMet),
		})
	} else {
		insights = append(insights, Insight{
			Kind:    "steps",
			Title:   "Step goal",
			Message: fmt.Sprintf("No day hit %d steps this week. A short daily walk adds up fast.", targets.Steps),
		})
	}

	if targets.Water > 0 {
		if sum.Averages.Water >= targets.Water {
			insights = append(insights, Insight{
				Kind:    "water",
				Title:   "Hydration",
				Message: fmt.Sprintf("Averaging %d glasses a day, right on your hydration goal.", sum.Averages.Water),
			})
		} else {
			insights = append(insights, Insight{
				Kind:    "water",
				Title:   "Hydration",
				Message: fmt.Sprintf("Averaging %d of %d glasses a day. Try a glass with every meal.", sum.Averages.Water, targets.Water),
			})
		}
	}

	if sum.Averages.Sleep > 0 && sum.Averages.Sleep < targets.Sleep {
		insights = append(insights, Insight{
			Kind:    "sleep",
			Title:   "Sleep",
			Message: fmt.Sprintf("Averaging %.1f hours of sleep, below your %.0f hour goal.", sum.Averages.Sleep, targets.Sleep),
		})
	}

	if sum.Workouts > 0 {
		insights = append(insights, Insight{
			Kind:    "workouts",
			Title:   "Workouts",
			Message: fmt.Sprintf("%d workouts completed this week.", sum.Workouts),
		})
	}

	if avg, n := s.weekMoodAverage(); n > 0 {
		msg := "Your mood has been steady this week."
		if avg >= 4 {
			msg = "Your mood has been great this week!"
		} else if avg < 2.5 {
			msg = "Rough week mood-wise. A breathing exercise might help."
		}
		insights = append(insights, Insight{Kind: "mood", Title: "Mood", Message: msg})
	}

	if sum.Streak >= 3 {
		insights = append(insights, Insight{
			Kind:    "streak",
			Title:   "Streak",
			Message: fmt.Sprintf("%d days logged in a row. Don't break the chain!", sum.Streak),
		})
	}

	return insights, nil
}

func (s *InsightsService) weekMoodAverage() (float64, int) {
	moods := s.moods.WeekMoods()
	if len(moods) == 0 {
		return 0, 0
	}
	total := 0
	for _, m := range moods {
		total += m.Mood
	}
	return float64(total) / float64(len(moods)), len(moods)
}
