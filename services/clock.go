package services

import "time"

// Clock supplies "now" so trackers can be pinned to a fixed day in tests
// instead of reading the wall clock.
type Clock func() time.Time
