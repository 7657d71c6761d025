package interval

import (
	"github.com/penwyp/go-activity-monitor/internal/core/constants"
	"github.com/penwyp/go-activity-monitor/internal/core/model"
)

// Normalize converts raw watcher events into clipped intervals bucketed by
// label. Events are dropped silently when their timestamp did not parse,
// when they are shorter than a second, or when clipping to the query window
// leaves nothing; a single bad sample must not invalidate the whole query.
// No merging happens here.
func Normalize(events []model.RawEvent, queryStart, queryEnd float64) LabeledSet {
	set := LabeledSet{
		model.LabelActive: nil,
		model.LabelAway:   nil,
	}

	for _, ev := range events {
		if !ev.Timestamp.Valid {
			continue
		}
		if ev.Duration < constants.MinEventSeconds {
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

		label := model.ClassifyLabel(ev.Label)
		set[label] = append(set[label], Interval{Start: start, End: end})
	}

	return set
}
