package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-activity-monitor/internal/core/model"
	"github.com/penwyp/go-activity-monitor/internal/data/source"
)

// fakeSource serves canned events per bucket.
type fakeSource struct {
	buckets    map[string][]model.Event
	bucketsErr error
	eventsErr  map[string]error
}

func (f *fakeSource) Buckets(ctx context.Context) (map[string]source.Bucket, error) {
	if f.bucketsErr != nil {
		return nil, f.bucketsErr
	}
	buckets := make(map[string]source.Bucket, len(f.buckets))
	for id := range f.buckets {
		buckets[id] = source.Bucket{ID: id}
	}
	return buckets, nil
}

func (f *fakeSource) Events(ctx context.Context, bucketID string, start, end time.Time) ([]model.Event, error) {
	if err, ok := f.eventsErr[bucketID]; ok {
		return nil, err
	}
	return f.buckets[bucketID], nil
}

func afkEvent(status string, start, duration float64) model.Event {
	return model.Event{
		Timestamp: model.EpochTimestamp(start),
		Duration:  duration,
		Data:      model.EventData{Status: status},
	}
}

func windowEvent(app string, start, duration float64) model.Event {
	return model.Event{
		Timestamp: model.EpochTimestamp(start),
		Duration:  duration,
		Data:      model.EventData{App: app},
	}
}

func TestBuildReport(t *testing.T) {
	src := &fakeSource{
		buckets: map[string][]model.Event{
			"aw-watcher-afk_host": {
				afkEvent("not-afk", 0, 600),
				afkEvent("afk", 600, 600),
			},
			"aw-watcher-window_host": {
				windowEvent("firefox", 0, 400),
				windowEvent("alacritty", 400, 200),
			},
		},
	}

	report, err := BuildReport(context.Background(), Options{
		Source:     src,
		QueryStart: time.Unix(0, 0),
		QueryEnd:   time.Unix(3600, 0),
		Now:        time.Unix(1800, 0),
	})
	require.NoError(t, err)

	// Active 0-600, explicit away 600-1200, gap 1200-1800 folded into away.
	assert.Equal(t, 600.0, report.Summary.ActiveSeconds)
	assert.Equal(t, 1200.0, report.Summary.AwaySeconds)
	assert.Equal(t, "0 hrs 10 mins", report.ActiveText)
	assert.Equal(t, "0 hrs 20 mins", report.AwayText)

	require.Len(t, report.Apps, 2)
	assert.Equal(t, "firefox", report.Apps[0].Name)
	assert.Equal(t, 400.0, report.Apps[0].Seconds)
	assert.Equal(t, "alacritty", report.Apps[1].Name)

	require.Len(t, report.Timeline, 2)
	assert.Equal(t, model.LabelActive, report.Timeline[0].Label)
	assert.Equal(t, model.TimelineRecord{Label: model.LabelAway, Start: 600, Duration: 1200}, report.Timeline[1])
}

func TestBuildReportTimelineChronological(t *testing.T) {
	src := &fakeSource{
		buckets: map[string][]model.Event{
			"aw-watcher-afk_host": {
				afkEvent("afk", 0, 600),
				afkEvent("not-afk", 600, 600),
				afkEvent("afk", 1200, 600),
			},
		},
	}

	report, err := BuildReport(context.Background(), Options{
		Source:     src,
		QueryStart: time.Unix(0, 0),
		QueryEnd:   time.Unix(1800, 0),
		Now:        time.Unix(1800, 0),
	})
	require.NoError(t, err)

	require.Len(t, report.Timeline, 3)
	for i := 1; i < len(report.Timeline); i++ {
		assert.GreaterOrEqual(t, report.Timeline[i].Start, report.Timeline[i-1].Start)
	}
}

func TestBuildReportNoEventsWholeRangeAway(t *testing.T) {
	src := &fakeSource{
		buckets: map[string][]model.Event{
			"aw-watcher-afk_host": {},
		},
	}

	report, err := BuildReport(context.Background(), Options{
		Source:     src,
		QueryStart: time.Unix(0, 0),
		QueryEnd:   time.Unix(3600, 0),
		Now:        time.Unix(3600, 0),
	})
	require.NoError(t, err)

	assert.Zero(t, report.Summary.ActiveSeconds)
	assert.Equal(t, 3600.0, report.Summary.AwaySeconds)
	assert.Empty(t, report.Apps)
}

// One failing bucket degrades to missing data, not a failed report.
func TestBuildReportFetchFailureDegrades(t *testing.T) {
	src := &fakeSource{
		buckets: map[string][]model.Event{
			"aw-watcher-afk_host":    {afkEvent("not-afk", 0, 600)},
			"aw-watcher-window_host": {windowEvent("firefox", 0, 600)},
		},
		eventsErr: map[string]error{
			"aw-watcher-window_host": errors.New("connection refused"),
		},
	}

	report, err := BuildReport(context.Background(), Options{
		Source:     src,
		QueryStart: time.Unix(0, 0),
		QueryEnd:   time.Unix(600, 0),
		Now:        time.Unix(600, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 600.0, report.Summary.ActiveSeconds)
	assert.Empty(t, report.Apps)
}

func TestBuildReportExplicitBucketsSkipDiscovery(t *testing.T) {
	src := &fakeSource{
		buckets: map[string][]model.Event{
			"custom-afk":    {afkEvent("afk", 0, 600)},
			"custom-window": {},
		},
		bucketsErr: errors.New("discovery must not run"),
	}

	report, err := BuildReport(context.Background(), Options{
		Source:       src,
		WindowBucket: "custom-window",
		AFKBucket:    "custom-afk",
		QueryStart:   time.Unix(0, 0),
		QueryEnd:     time.Unix(600, 0),
		Now:          time.Unix(600, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 600.0, report.Summary.AwaySeconds)
}

func TestBuildReportNoBucketsAtAll(t *testing.T) {
	src := &fakeSource{buckets: map[string][]model.Event{"unrelated": {}}}

	_, err := BuildReport(context.Background(), Options{
		Source:     src,
		QueryStart: time.Unix(0, 0),
		QueryEnd:   time.Unix(600, 0),
	})
	assert.Error(t, err)
}

func TestBuildReportInvalidWindow(t *testing.T) {
	_, err := BuildReport(context.Background(), Options{
		Source:     &fakeSource{},
		QueryStart: time.Unix(600, 0),
		QueryEnd:   time.Unix(0, 0),
	})
	assert.Error(t, err)
}

func TestCacheKeyDistinguishesQueries(t *testing.T) {
	base := Options{QueryStart: time.Unix(0, 0), QueryEnd: time.Unix(3600, 0), TopApps: 20}

	other := base
	other.QueryEnd = time.Unix(7200, 0)

	assert.NotEqual(t, CacheKey("host", base), CacheKey("host", other))
	assert.NotEqual(t, CacheKey("host-a", base), CacheKey("host-b", base))
	assert.Equal(t, CacheKey("host", base), CacheKey("host", base))
}
