package storage

import "fmt"

// Options selects and configures a backend.
type Options struct {
	Driver      string // memory | file | sqlite | postgres | redis
	DataDir     string
	SQLitePath  string
	PostgresDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open builds the configured backend.
func Open(opts Options) (Backend, error) {
	switch opts.Driver {
	case "memory":
		return NewMemoryBackend(), nil
	case "file":
		return NewFileBackend(opts.DataDir)
	case "sqlite", "":
		return NewSQLiteBackend(opts.SQLitePath)
	case "postgres":
		return NewPostgresBackend(opts.PostgresDSN)
	case "redis":
		return NewRedisBackend(opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
