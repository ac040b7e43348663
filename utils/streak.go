package utils

import "time"

// CalculateStreak counts consecutive local calendar days, ending today, that
// have at least one entry. Each element of dates is either a YYYY-MM-DD day
// or a timestamp whose first ten characters are the day. The walk tests
// membership of each expected day in the set of seen days, so several
// entries on the same date never advance the streak more than once. The
// scan is strictly contiguous: the first missing day stops it, and a
// missing today yields 0.
func CalculateStreak(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		if len(d) > len(DateLayout) {
			d = d[:len(DateLayout)]
		}
		if d == "" {
			continue
		}
		seen[d] = struct{}{}
	}

	streak := 0
	for cur := today; ; cur = cur.AddDate(0, 0, -1) {
		if _, ok := seen[cur.Format(DateLayout)]; !ok {
			break
		}
		streak++
	}
	return streak
}
