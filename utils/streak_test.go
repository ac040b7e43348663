package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(today time.Time, offset int) string {
	return today.AddDate(0, 0, offset).Format(DateLayout)
}

func TestCalculateStreak(t *testing.T) {
	today := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)

	t.Run("empty history", func(t *testing.T) {
		assert.Equal(t, 0, CalculateStreak(nil, today))
		assert.Equal(t, 0, CalculateStreak([]string{}, today))
	})

	t.Run("consecutive days ending today", func(t *testing.T) {
		dates := []string{day(today, 0), day(today, -1), day(today, -2)}
		assert.Equal(t, 3, CalculateStreak(dates, today))
	})

	t.Run("missing today yields zero", func(t *testing.T) {
		dates := []string{day(today, -1), day(today, -2)}
		assert.Equal(t, 0, CalculateStreak(dates, today))
	})

	t.Run("gap stops the scan", func(t *testing.T) {
		// day -2 missing: the older entries must not count
		dates := []string{day(today, 0), day(today, -1), day(today, -3), day(today, -4)}
		assert.Equal(t, 2, CalculateStreak(dates, today))
	})

	t.Run("duplicate dates count once", func(t *testing.T) {
		dates := []string{day(today, 0), day(today, 0), day(today, 0), day(today, -1)}
		assert.Equal(t, 2, CalculateStreak(dates, today))
	})

	t.Run("timestamps are trimmed to their day", func(t *testing.T) {
		dates := []string{
			today.Format(time.RFC3339),
			today.AddDate(0, 0, -1).Format(time.RFC3339),
		}
		assert.Equal(t, 2, CalculateStreak(dates, today))
	})

	t.Run("unordered input", func(t *testing.T) {
		dates := []string{day(today, -2), day(today, 0), day(today, -1)}
		assert.Equal(t, 3, CalculateStreak(dates, today))
	})
}
