package main

import (
	"time"

	"github.com/Uviii9p/Health-Hub/config"
	"github.com/Uviii9p/Health-Hub/routes"
	"github.com/Uviii9p/Health-Hub/services"
	"github.com/Uviii9p/Health-Hub/storage"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	if level, err := log.ParseLevel(cfg.LogLevel); err != nil {
		log.Warnf("invalid log level %q, using info", cfg.LogLevel)
	} else {
		log.SetLevel(level)
	}

	backend, err := storage.Open(storage.Options{
		Driver:        cfg.StorageDriver,
		DataDir:       cfg.DataDir,
		SQLitePath:    cfg.SQLitePath,
		PostgresDSN:   cfg.PostgresDSN,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("open storage: %s", err)
	}
	defer backend.Close()
	log.Infof("storage driver: %s", cfg.StorageDriver)

	store := storage.New(backend)
	now := services.Clock(time.Now)
	hub := services.NewEventHub(now)

	stats := services.NewStatsService(store, now, hub)
	reminders := services.NewReminderService(store, now, hub)
	moods := services.NewMoodService(store, now, hub)
	meals := services.NewMealService(store, now, hub)
	workouts := services.NewWorkoutService(store, now, hub)
	profile := services.NewProfileService(store, hub)
	goals := services.NewGoalService(stats, meals, profile)
	analytics := services.NewAnalyticsService(stats, moods, workouts, goals, now)
	insights := services.NewInsightsService(analytics, moods, goals)
	catalog := services.NewCatalogService()
	breathing := services.NewBreathingService(hub)

	r := routes.SetupRouter(routes.Deps{
		Stats:     stats,
		Reminders: reminders,
		Moods:     moods,
		Meals:     meals,
		Workouts:  workouts,
		Profile:   profile,
		Goals:     goals,
		Analytics: analytics,
		Insights:  insights,
		Catalog:   catalog,
		Breathing: breathing,
		Hub:       hub,
	})

	log.Infof("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %s", err)
	}
}
