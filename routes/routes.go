package routes

import (
	"github.com/Uviii9p/Health-Hub/controllers"
	"github.com/Uviii9p/Health-Hub/middlewares"
	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries every service the router needs. All of them are required.
type Deps struct {
	Stats     *services.StatsService
	Reminders *services.ReminderService
	Moods     *services.MoodService
	Meals     *services.MealService
	Workouts  *services.WorkoutService
	Profile   *services.ProfileService
	Goals     *services.GoalService
	Analytics *services.AnalyticsService
	Insights  *services.InsightsService
	Catalog   *services.CatalogService
	Breathing *services.BreathingService
	Hub       *services.EventHub
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.MetricsMiddleware())

	statsCtl := controllers.NewStatsController(deps.Stats)
	stats := r.Group("/stats")
	{
		stats.GET("", statsCtl.GetToday)
		stats.PUT("", statsCtl.UpdateStat)
		stats.POST("/increment", statsCtl.IncrementStat)
		stats.GET("/history", statsCtl.GetHistory)
	}

	reminderCtl := controllers.NewReminderController(deps.Reminders)
	reminders := r.Group("/reminders")
	{
		reminders.GET("", reminderCtl.List)
		reminders.POST("", reminderCtl.Add)
		reminders.PATCH("/:id", reminderCtl.Update)
		reminders.POST("/:id/toggle", reminderCtl.Toggle)
		reminders.DELETE("/:id", reminderCtl.Delete)
	}

	moodCtl := controllers.NewMoodController(deps.Moods)
	moods := r.Group("/moods")
	{
		moods.GET("", moodCtl.List)
		moods.POST("", moodCtl.Add)
		moods.GET("/today", moodCtl.Today)
		moods.GET("/week", moodCtl.Week)
	}

	mealCtl := controllers.NewMealController(deps.Meals)
	meals := r.Group("/meals")
	{
		meals.GET("", mealCtl.Today)
		meals.POST("", mealCtl.Add)
		meals.DELETE("/:id", mealCtl.Remove)
		meals.GET("/nutrition", mealCtl.Nutrition)
	}

	workoutCtl := controllers.NewWorkoutController(deps.Workouts)
	workouts := r.Group("/workouts")
	{
		workouts.GET("", workoutCtl.List)
		workouts.POST("/complete", workoutCtl.Complete)
		workouts.GET("/today", workoutCtl.Today)
		workouts.GET("/week", workoutCtl.Week)
	}

	profileCtl := controllers.NewProfileController(deps.Profile)
	r.GET("/profile", profileCtl.Get)
	r.PUT("/profile", profileCtl.Update)

	goalCtl := controllers.NewGoalController(deps.Goals)
	r.GET("/goals", goalCtl.Get)

	analyticsCtl := controllers.NewAnalyticsController(deps.Analytics)
	analytics := r.Group("/analytics")
	{
		analytics.GET("/summary", analyticsCtl.Summary)
		analytics.GET("/moods", analyticsCtl.Moods)
		analytics.GET("/streak", analyticsCtl.Streak)
	}

	insightsCtl := controllers.NewInsightsController(deps.Insights)
	r.GET("/insights", insightsCtl.Weekly)

	catalogCtl := controllers.NewCatalogController(deps.Catalog)
	catalog := r.Group("/catalog")
	{
		catalog.GET("/workouts", catalogCtl.Workouts)
		catalog.GET("/meals", catalogCtl.Meals)
		catalog.GET("/breathing", catalogCtl.Breathing)
		catalog.GET("/moods", catalogCtl.Moods)
		catalog.GET("/quote", catalogCtl.Quote)
		catalog.GET("/tip", catalogCtl.Tip)
	}

	breathingCtl := controllers.NewBreathingController(deps.Breathing, deps.Catalog)
	breathing := r.Group("/breathing")
	{
		breathing.POST("/start", breathingCtl.Start)
		breathing.POST("/stop", breathingCtl.Stop)
		breathing.GET("/status", breathingCtl.Status)
	}

	eventsCtl := controllers.NewEventsController(deps.Hub)
	r.GET("/ws", eventsCtl.Stream)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
