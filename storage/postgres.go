package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type kvEntry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

// PostgresBackend backs the store with a kv table in Postgres, for setups
// where the tracker state should live off the machine.
type PostgresBackend struct {
	db *gorm.DB
}

func NewPostgresBackend(dsn string) (*PostgresBackend, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	return &PostgresBackend{db: db}, nil
}

func (b *PostgresBackend) Get(key string) (string, bool, error) {
	var e kvEntry
	err := b.db.Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (b *PostgresBackend) Set(key, value string) error {
	e := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return b.db.
		Where("key = ?", key).
		Assign(e).
		FirstOrCreate(&e).Error
}

func (b *PostgresBackend) Delete(key string) error {
	return b.db.Where("key = ?", key).Delete(&kvEntry{}).Error
}

func (b *PostgresBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
