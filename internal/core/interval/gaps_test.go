package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindGaps(t *testing.T) {
	tests := []struct {
		name       string
		covered    []Interval
		rangeStart float64
		rangeEnd   float64
		expected   []Interval
	}{
		{
			name:       "no_coverage_whole_range_is_one_gap",
			covered:    nil,
			rangeStart: 0,
			rangeEnd:   3600,
			expected:   []Interval{{Start: 0, End: 3600}},
		},
		{
			name:       "empty_range_no_gaps",
			covered:    nil,
			rangeStart: 100,
			rangeEnd:   100,
			expected:   nil,
		},
		{
			name:       "inverted_range_no_gaps",
			covered:    []Interval{{Start: 0, End: 10}},
			rangeStart: 200,
			rangeEnd:   100,
			expected:   nil,
		},
		{
			name:       "leading_gap",
			covered:    []Interval{{Start: 100, End: 200}},
			rangeStart: 0,
			rangeEnd:   200,
			expected:   []Interval{{Start: 0, End: 100}},
		},
		{
			name:       "trailing_gap",
			covered:    []Interval{{Start: 0, End: 100}},
			rangeStart: 0,
			rangeEnd:   300,
			expected:   []Interval{{Start: 100, End: 300}},
		},
		{
			name: "between_gaps",
			covered: []Interval{
				{Start: 0, End: 100},
				{Start: 200, End: 300},
				{Start: 500, End: 600},
			},
			rangeStart: 0,
			rangeEnd:   600,
			expected: []Interval{
				{Start: 100, End: 200},
				{Start: 300, End: 500},
			},
		},
		{
			name:       "touching_coverage_yields_no_gap",
			covered:    []Interval{{Start: 0, End: 100}, {Start: 100, End: 200}},
			rangeStart: 0,
			rangeEnd:   200,
			expected:   nil,
		},
		{
			name:       "unsorted_coverage",
			covered:    []Interval{{Start: 200, End: 300}, {Start: 0, End: 100}},
			rangeStart: 0,
			rangeEnd:   300,
			expected:   []Interval{{Start: 100, End: 200}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindGaps(tt.covered, tt.rangeStart, tt.rangeEnd))
		})
	}
}

// Covered seconds plus gap seconds must equal the full range when coverage
// lies inside the range.
func TestFindGapsCoverageConservation(t *testing.T) {
	covered := []Interval{
		{Start: 50, End: 150},
		{Start: 400, End: 700},
		{Start: 900, End: 950},
	}
	const rangeStart, rangeEnd = 0.0, 1000.0

	var coveredSeconds float64
	for _, iv := range covered {
		coveredSeconds += iv.Duration()
	}

	var gapSeconds float64
	for _, gap := range FindGaps(covered, rangeStart, rangeEnd) {
		gapSeconds += gap.Duration()
	}

	assert.InDelta(t, rangeEnd-rangeStart, coveredSeconds+gapSeconds, 1e-9)
}

func TestMergeAndFillGaps(t *testing.T) {
	tests := []struct {
		name           string
		active         []Interval
		away           []Interval
		queryStart     float64
		queryEnd       float64
		now            float64
		expectedActive []Interval
		expectedAway   []Interval
	}{
		{
			name:         "no_events_whole_window_is_away",
			queryStart:   0,
			queryEnd:     3600,
			now:          3600,
			expectedAway: []Interval{{Start: 0, End: 3600}},
		},
		{
			name:       "no_events_now_before_window_start",
			queryStart: 3600,
			queryEnd:   7200,
			now:        1800,
		},
		{
			name:           "gap_between_labels_reclassified_as_away",
			active:         []Interval{{Start: 0, End: 100}},
			away:           []Interval{{Start: 200, End: 300}},
			queryStart:     0,
			queryEnd:       300,
			now:            300,
			expectedActive: []Interval{{Start: 0, End: 100}},
			expectedAway:   []Interval{{Start: 100, End: 300}},
		},
		{
			name:           "no_gap_before_first_event",
			active:         []Interval{{Start: 1000, End: 2000}},
			queryStart:     0,
			queryEnd:       3600,
			now:            3600,
			expectedActive: []Interval{{Start: 1000, End: 2000}},
			expectedAway:   []Interval{{Start: 2000, End: 3600}},
		},
		{
			name:           "trailing_gap_stops_at_now",
			active:         []Interval{{Start: 0, End: 1000}},
			queryStart:     0,
			queryEnd:       86400,
			now:            2000,
			expectedActive: []Interval{{Start: 0, End: 1000}},
			expectedAway:   []Interval{{Start: 1000, End: 2000}},
		},
		{
			name:           "fully_covered_no_gaps_added",
			active:         []Interval{{Start: 0, End: 1800}},
			away:           []Interval{{Start: 1800, End: 3600}},
			queryStart:     0,
			queryEnd:       3600,
			now:            3600,
			expectedActive: []Interval{{Start: 0, End: 1800}},
			expectedAway:   []Interval{{Start: 1800, End: 3600}},
		},
		{
			name: "overlapping_raw_inputs_merged_per_label",
			active: []Interval{
				{Start: 0, End: 100},
				{Start: 50, End: 150},
			},
			away:           []Interval{{Start: 150, End: 200}},
			queryStart:     0,
			queryEnd:       200,
			now:            200,
			expectedActive: []Interval{{Start: 0, End: 150}},
			expectedAway:   []Interval{{Start: 150, End: 200}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, away := MergeAndFillGaps(tt.active, tt.away, tt.queryStart, tt.queryEnd, tt.now)
			assert.Equal(t, tt.expectedActive, active)
			assert.Equal(t, tt.expectedAway, away)
		})
	}
}

// Gap detection never produces away time starting at or after the current
// moment; the future trivially has no data.
func TestMergeAndFillGapsNoFutureGaps(t *testing.T) {
	const now = 5000.0
	active := []Interval{{Start: 0, End: 1000}, {Start: 3000, End: 4000}}

	_, away := MergeAndFillGaps(active, nil, 0, 86400, now)
	require.NotEmpty(t, away)
	for _, iv := range away {
		assert.Less(t, iv.Start, now)
		assert.LessOrEqual(t, iv.End, now)
	}
}

// Once gaps are folded in, active plus away equals the covered span of the
// observed range.
func TestMergeAndFillGapsConservation(t *testing.T) {
	active := []Interval{{Start: 100, End: 900}, {Start: 1500, End: 2200}}
	away := []Interval{{Start: 900, End: 1100}}
	const queryStart, queryEnd, now = 0.0, 3600.0, 3600.0

	mergedActive, mergedAway := MergeAndFillGaps(active, away, queryStart, queryEnd, now)

	var total float64
	for _, iv := range mergedActive {
		total += iv.Duration()
	}
	for _, iv := range mergedAway {
		total += iv.Duration()
	}

	// Coverage starts at the first event (100), so the span is now-100.
	assert.InDelta(t, now-100, total, 1e-9)
}
