// Package aggregator folds window-focus events into a per-application usage
// ranking for the report's app breakdown.
package aggregator

import (
	"sort"

	"github.com/penwyp/go-activity-monitor/internal/core/constants"
	"github.com/penwyp/go-activity-monitor/internal/core/model"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

type Aggregator struct {
	topN int
}

// New creates an Aggregator keeping the top N applications by total time.
func New(topN int) *Aggregator {
	if topN <= 0 {
		topN = constants.DefaultTopApps
	}
	return &Aggregator{topN: topN}
}

type appStat struct {
	name    string
	title   string
	seconds float64
}

// AppUsage merges events by application, sums their durations clipped to the
// query window, and returns the top entries by total time. App durations can
// overlap the active total because a focused window and the AFK watcher
// report independently; the ranking is a relative breakdown, not a second
// accounting of active time.
func (a *Aggregator) AppUsage(events []model.Event, queryStart, queryEnd float64) []model.AppUsage {
	totals := make(map[string]*appStat)

	for _, ev := range events {
		if !ev.Timestamp.Valid {
			continue
		}

		start := ev.Timestamp.Epoch
		end := start + ev.Duration
		if start < queryStart {
			start = queryStart
		}
		if end > queryEnd {
			end = queryEnd
		}
		if end <= start {
			continue
		}

		name := ev.Data.App
		if name == "" {
			name = "Unknown"
		}

		stat, ok := totals[name]
		if !ok {
			stat = &appStat{name: name, title: ev.Data.Title}
			totals[name] = stat
		}
		stat.seconds += end - start
	}

	stats := make([]*appStat, 0, len(totals))
	for _, stat := range totals {
		stats = append(stats, stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].seconds != stats[j].seconds {
			return stats[i].seconds > stats[j].seconds
		}
		return stats[i].name < stats[j].name
	})

	if len(stats) > a.topN {
		stats = stats[:a.topN]
	}

	usage := make([]model.AppUsage, 0, len(stats))
	for _, stat := range stats {
		usage = append(usage, model.AppUsage{
			Name:    stat.name,
			Title:   stat.title,
			Seconds: stat.seconds,
			Text:    util.FormatSeconds(stat.seconds),
		})
	}
	return usage
}
