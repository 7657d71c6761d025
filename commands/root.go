package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-activity-monitor/internal/app"
	"github.com/penwyp/go-activity-monitor/internal/core/constants"
	"github.com/penwyp/go-activity-monitor/internal/data/cache"
	"github.com/penwyp/go-activity-monitor/internal/data/source"
	"github.com/penwyp/go-activity-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

var (
	// Event source
	host         string
	eventsFile   string
	windowBucket string
	afkBucket    string

	// Query window
	duration string
	startStr string
	endStr   string

	// Output related
	outputFormat string
	timezone     string
	topApps      int

	// Caching
	cacheTTL = constants.DefaultCacheTTL
	noCache  bool
	reset    bool

	// Logging related
	debug bool

	rootCmd = &cobra.Command{
		Use:   "go-activity-monitor [flags]",
		Short: "Active vs away time breakdown from ActivityWatch events",
		Long: `go-activity-monitor summarizes a person's active and away time from the
event streams recorded by ActivityWatch watchers (window focus and AFK).

Overlapping events are merged, stretches with no data at all are counted as
away time (the machine was off or unreachable), and the result is reported
as totals, a per-application breakdown and a timeline.

Examples:
  go-activity-monitor                                  # last 24 hours, local server
  go-activity-monitor --duration 7d --output summary   # last week as a text report
  go-activity-monitor --start 2026-08-01 --end 2026-08-02
  go-activity-monitor --file export.json --output json # offline snapshot
  go-activity-monitor timeline                         # terminal timeline view
  go-activity-monitor watch --file export.json         # re-render on change`,
		RunE: runReport,
	}
)

const (
	defaultLogFile  = "~/.go-activity-monitor/logs/app.log"
	defaultCacheDir = "~/.go-activity-monitor/cache"
	defaultHost     = "http://localhost:5600"
)

func init() {
	// Event source configuration
	rootCmd.PersistentFlags().StringVar(&host, "host", defaultHost,
		"ActivityWatch server address")
	rootCmd.PersistentFlags().StringVar(&eventsFile, "file", "",
		"Read events from an exported snapshot file instead of the server")
	rootCmd.PersistentFlags().StringVar(&windowBucket, "window-bucket", "",
		"Window watcher bucket ID (discovered when empty)")
	rootCmd.PersistentFlags().StringVar(&afkBucket, "afk-bucket", "",
		"AFK watcher bucket ID (discovered when empty)")

	// Time filtering
	rootCmd.PersistentFlags().StringVarP(&duration, "duration", "d", "",
		"Time duration to look back (e.g. 12h, 7d, 2w, 1d12h)")
	rootCmd.PersistentFlags().StringVar(&startStr, "start", "",
		"Window start (RFC3339 or YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&endStr, "end", "",
		"Window end (RFC3339 or YYYY-MM-DD, default now)")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g. Asia/Shanghai, UTC)")
	rootCmd.PersistentFlags().IntVar(&topApps, "top", constants.DefaultTopApps,
		"How many applications to keep in the breakdown")

	// Caching
	rootCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", constants.DefaultCacheTTL,
		"How long computed reports stay fresh")
	rootCmd.Flags().BoolVar(&noCache, "no-cache", false,
		"Bypass the report cache")
	rootCmd.Flags().BoolVarP(&reset, "reset", "r", false,
		"Clear the report cache before running")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

// initRuntime sets up logging and the time provider; shared by every command.
func initRuntime() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)

	return util.InitializeTimeProvider(timezone)
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	start, end, err := queryWindow()
	if err != nil {
		return err
	}

	src, sourceName := buildSource()
	opts := app.Options{
		Source:       src,
		WindowBucket: windowBucket,
		AFKBucket:    afkBucket,
		QueryStart:   start,
		QueryEnd:     end,
		TopApps:      topApps,
	}

	var reportCache *cache.FileCache
	if !noCache {
		cacheDir := expandPath(defaultCacheDir)
		reportCache, err = cache.NewFileCache(cacheDir, cacheTTL)
		if err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
		if reset {
			if err := reportCache.Clear(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			util.LogInfo("Cache cleared")
		}

		key := app.CacheKey(sourceName, opts)
		if report, ok := reportCache.Get(key); ok {
			util.LogDebugf("cache hit for %q", key)
			return formatter.New(outputFormat).Format(report)
		}
	}

	report, err := app.BuildReport(context.Background(), opts)
	if err != nil {
		return err
	}

	if reportCache != nil {
		if err := reportCache.Set(app.CacheKey(sourceName, opts), report); err != nil {
			util.LogWarnf("cache write failed: %v", err)
		}
	}

	return formatter.New(outputFormat).Format(report)
}

// buildSource picks the event source: an exported snapshot file when --file
// is given, the ActivityWatch server otherwise. The name identifies the
// source in cache keys.
func buildSource() (source.EventSource, string) {
	if eventsFile != "" {
		path := expandPath(eventsFile)
		return source.NewFileSource(path), "file:" + path
	}
	return source.NewClient(host), host
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
