package constants

import "time"

const (
	// Events shorter than this are watcher polling noise, not real activity.
	MinEventSeconds = 1.0

	// Query window when neither --start nor --duration is given.
	DefaultWindow = 24 * time.Hour

	// How long a computed report stays fresh in the response cache.
	DefaultCacheTTL = 5 * time.Minute

	// Delay between a file change notification and the re-render, so a
	// burst of writes produces a single refresh.
	WatchDebounce = 500 * time.Millisecond

	// Timeout for requests against the ActivityWatch server.
	RequestTimeout = 10 * time.Second

	// How many applications the usage breakdown keeps.
	DefaultTopApps = 20
)
