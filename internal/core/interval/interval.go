// Package interval is the activity engine: it turns raw watcher events into
// canonical per-label interval lists, fills unmonitored stretches, and
// projects the result into summary totals and timeline records.
//
// All arithmetic is in floating-point epoch seconds; nothing is rounded
// until presentation. Every function here is pure and safe to call from any
// number of goroutines.
package interval

import "github.com/penwyp/go-activity-monitor/internal/core/model"

// Interval is a span of epoch-second time. Invariant: End > Start.
// Degenerate or inverted intervals are dropped during normalization, never
// constructed.
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns the interval length in seconds.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// LabeledSet maps each status label to its interval list. After Merge the
// list per label is canonical: ascending by start, no two intervals
// overlapping or touching.
type LabeledSet map[model.Label][]Interval
