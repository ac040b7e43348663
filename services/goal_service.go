package services

import (
	"github.com/Uviii9p/Health-Hub/utils"
)

// Fixed dashboard targets; the rest derive from the profile.
const (
	stepsTarget   = 10000
	sleepTarget   = 8.0
	proteinTarget = 60.0
	carbsTarget   = 250.0
	fatTarget     = 65.0
)

// DailyTargets are the per-metric goals for one day.
type DailyTargets struct {
	Steps    int     `json:"steps"`
	Water    int     `json:"water"` // glasses
	Calories int     `json:"calories"`
	Sleep    float64 `json:"sleep"` // hours
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// GoalProgress pairs what was consumed with the goal and the capped
// percentage.
type GoalProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  int     `json:"percent"`
}

// GoalService joins today's stats and meals against the daily targets.
type GoalService struct {
	stats   *StatsService
	meals   *MealService
	profile *ProfileService
}

func NewGoalService(stats *StatsService, meals *MealService, profile *ProfileService) *GoalService {
	return &GoalService{stats: stats, meals: meals, profile: profile}
}

// Targets returns the current goals: steps, sleep and macros are fixed,
// water and calories track the profile.
func (s *GoalService) Targets() DailyTargets {
	p := s.profile.Get()
	return DailyTargets{
		Steps:    stepsTarget,
		Water:    utils.CalculateWaterIntake(p.Weight),
		Calories: utils.CalculateDailyCalories(utils.CalorieParams{
			Weight:        p.Weight,
			Height:        p.Height,
			Age:           p.Age,
			Gender:        p.Gender,
			ActivityLevel: p.ActivityLevel,
		}),
		Sleep:   sleepTarget,
		Protein: proteinTarget,
		Carbs:   carbsTarget,
		Fat:     fatTarget,
	}
}

// TodayProgress computes percent-of-goal for every tracked metric in the
// shape the dashboard renders: consumed, goal, percent.
func (s *GoalService) TodayProgress() map[string]GoalProgress {
	t := s.Targets()
	st := s.stats.Today()
	tot := s.meals.Totals()

	prog := func(consumed, goal float64) GoalProgress {
		return GoalProgress{
			Consumed: consumed,
			Goal:     goal,
			Percent:  utils.CalculatePercentage(consumed, goal),
		}
	}

	return map[string]GoalProgress{
		"steps":    prog(float64(st.Steps), float64(t.Steps)),
		"water":    prog(float64(st.Water), float64(t.Water)),
		"calories": prog(tot.Calories, float64(t.Calories)),
		"sleep":    prog(st.Sleep, t.Sleep),
		"protein":  prog(tot.Protein, t.Protein),
		"carbs":    prog(tot.Carbs, t.Carbs),
		"fat":      prog(tot.Fat, t.Fat),
	}
}
