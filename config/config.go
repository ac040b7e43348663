package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config is assembled from the environment (an optional .env file is
// loaded first). Everything has a local-first default: with no environment
// at all the app serves on :8080 backed by a sqlite file next to it.
type Config struct {
	Addr     string
	LogLevel string

	StorageDriver string // memory | file | sqlite | postgres | redis
	DataDir       string
	SQLitePath    string
	PostgresDSN   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err)
	}

	cfg := Config{
		Addr:          getenv("HEALTH_ADDR", ":8080"),
		LogLevel:      getenv("HEALTH_LOG_LEVEL", "info"),
		StorageDriver: getenv("HEALTH_STORAGE", "sqlite"),
		DataDir:       getenv("HEALTH_DATA_DIR", "data"),
		SQLitePath:    getenv("HEALTH_SQLITE_PATH", "healthtrack.db"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Warnf("invalid REDIS_DB %q, using 0", v)
		} else {
			cfg.RedisDB = n
		}
	}

	cfg.PostgresDSN = os.Getenv("DATABASE_DSN")
	if cfg.PostgresDSN == "" && os.Getenv("DB_HOST") != "" {
		cfg.PostgresDSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
