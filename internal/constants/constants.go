package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	// FetchBatchSize caps concurrent per-match detail fetches.
	FetchBatchSize = 10
)

const (
	// WeeklyWindow is the lookback for the weekly leader pick.
	WeeklyWindow = 7 * 24 * time.Hour
)

const (
	DefaultRateLimit  = 90
	DefaultRateWindow = time.Minute
)
