// Package app assembles activity reports: it fetches events from a source,
// runs the interval pipeline and attaches the per-application breakdown.
package app

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/penwyp/go-activity-monitor/internal/core/interval"
	"github.com/penwyp/go-activity-monitor/internal/core/model"
	"github.com/penwyp/go-activity-monitor/internal/data/aggregator"
	"github.com/penwyp/go-activity-monitor/internal/data/source"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

// Watcher name fragments used for bucket discovery.
const (
	WindowWatcher = "aw-watcher-window"
	AFKWatcher    = "aw-watcher-afk"
)

// Options configure one report computation.
type Options struct {
	Source source.EventSource

	// Explicit bucket IDs; discovered from the source when empty.
	WindowBucket string
	AFKBucket    string

	QueryStart time.Time
	QueryEnd   time.Time

	// Now defaults to the wall clock; injectable for tests.
	Now time.Time

	TopApps int
}

// BuildReport fetches the window and AFK events for the query window and
// runs the pipeline: normalize, merge, gap fill, summarize, aggregate.
//
// A failed bucket fetch degrades to an empty event list rather than failing
// the report; the engine already treats missing data as away time.
func BuildReport(ctx context.Context, opts Options) (*model.ActivityReport, error) {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if !opts.QueryEnd.After(opts.QueryStart) {
		return nil, fmt.Errorf("invalid query window: %s to %s", opts.QueryStart, opts.QueryEnd)
	}

	windowBucket, afkBucket, err := resolveBuckets(ctx, opts)
	if err != nil {
		return nil, err
	}

	// The two bucket fetches are independent; run them concurrently. The
	// engine itself stays synchronous.
	var (
		wg           sync.WaitGroup
		windowEvents []model.Event
		afkEvents    []model.Event
	)
	fetch := func(bucketID string, out *[]model.Event) {
		defer wg.Done()
		if bucketID == "" {
			return
		}
		events, err := opts.Source.Events(ctx, bucketID, opts.QueryStart, opts.QueryEnd)
		if err != nil {
			util.LogWarnf("fetch %s: %v", bucketID, err)
			return
		}
		*out = events
	}
	wg.Add(2)
	go fetch(windowBucket, &windowEvents)
	go fetch(afkBucket, &afkEvents)
	wg.Wait()

	queryStart := toEpoch(opts.QueryStart)
	queryEnd := toEpoch(opts.QueryEnd)

	raw := make([]model.RawEvent, 0, len(windowEvents)+len(afkEvents))
	for _, ev := range afkEvents {
		raw = append(raw, model.RawEvent{
			Label:     ev.Data.Status,
			Timestamp: ev.Timestamp,
			Duration:  ev.Duration,
		})
	}
	for _, ev := range windowEvents {
		raw = append(raw, model.RawEvent{
			Label:     ev.Data.App,
			Timestamp: ev.Timestamp,
			Duration:  ev.Duration,
		})
	}

	set := interval.Normalize(raw, queryStart, queryEnd)
	active, away := interval.MergeAndFillGaps(
		set[model.LabelActive], set[model.LabelAway],
		queryStart, queryEnd, toEpoch(opts.Now))

	summary := interval.Summarize(active, away)

	timeline := interval.ToTimeline(active, away)
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Start < timeline[j].Start
	})

	util.LogInfof("report: %d window + %d afk events, active=%.0fs away=%.0fs",
		len(windowEvents), len(afkEvents), summary.ActiveSeconds, summary.AwaySeconds)

	return &model.ActivityReport{
		QueryStart:  queryStart,
		QueryEnd:    queryEnd,
		GeneratedAt: opts.Now.Unix(),
		Summary:     summary,
		ActiveText:  util.FormatSeconds(summary.ActiveSeconds),
		AwayText:    util.FormatSeconds(summary.AwaySeconds),
		Apps:        aggregator.New(opts.TopApps).AppUsage(windowEvents, queryStart, queryEnd),
		Timeline:    timeline,
	}, nil
}

func resolveBuckets(ctx context.Context, opts Options) (windowBucket, afkBucket string, err error) {
	windowBucket = opts.WindowBucket
	afkBucket = opts.AFKBucket
	if windowBucket != "" && afkBucket != "" {
		return windowBucket, afkBucket, nil
	}

	buckets, err := opts.Source.Buckets(ctx)
	if err != nil {
		return "", "", fmt.Errorf("list buckets: %w", err)
	}

	if windowBucket == "" {
		if windowBucket, _ = source.FindBucket(buckets, WindowWatcher); windowBucket == "" {
			util.LogWarn("no window watcher bucket found")
		}
	}
	if afkBucket == "" {
		if afkBucket, _ = source.FindBucket(buckets, AFKWatcher); afkBucket == "" {
			util.LogWarn("no AFK watcher bucket found")
		}
	}
	if windowBucket == "" && afkBucket == "" {
		return "", "", fmt.Errorf("no watcher buckets found among %d buckets", len(buckets))
	}
	return windowBucket, afkBucket, nil
}

// CacheKey identifies a report computation for the response cache.
func CacheKey(sourceName string, opts Options) string {
	return fmt.Sprintf("%s|%s|%s|%d|%d|%d",
		sourceName, opts.WindowBucket, opts.AFKBucket,
		opts.QueryStart.Unix(), opts.QueryEnd.Unix(), opts.TopApps)
}

func toEpoch(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
