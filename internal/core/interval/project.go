package interval

import "github.com/penwyp/go-activity-monitor/internal/core/model"

// Summarize sums interval lengths per label.
func Summarize(active, away []Interval) model.Summary {
	var s model.Summary
	for _, iv := range active {
		s.ActiveSeconds += iv.Duration()
	}
	for _, iv := range away {
		s.AwaySeconds += iv.Duration()
	}
	return s
}

// ToTimeline flattens both merged sets into per-interval records. Records
// are grouped by label, not interleaved; callers that want one chronological
// view sort by start themselves.
func ToTimeline(active, away []Interval) []model.TimelineRecord {
	records := make([]model.TimelineRecord, 0, len(active)+len(away))
	for _, iv := range active {
		records = append(records, model.TimelineRecord{
			Label:    model.LabelActive,
			Start:    iv.Start,
			Duration: iv.Duration(),
		})
	}
	for _, iv := range away {
		records = append(records, model.TimelineRecord{
			Label:    model.LabelAway,
			Start:    iv.Start,
			Duration: iv.Duration(),
		})
	}
	return records
}
