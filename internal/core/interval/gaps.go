package interval

import "sort"

// FindGaps returns the sub-ranges of [rangeStart, rangeEnd] not covered by
// any interval. When there is no coverage at all the whole range is one gap.
// Only positive-length gaps are emitted.
func FindGaps(covered []Interval, rangeStart, rangeEnd float64) []Interval {
	if rangeEnd <= rangeStart {
		return nil
	}
	if len(covered) == 0 {
		return []Interval{{Start: rangeStart, End: rangeEnd}}
	}

	sorted := make([]Interval, len(covered))
	copy(sorted, covered)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var gaps []Interval
	if sorted[0].Start > rangeStart {
		gaps = append(gaps, Interval{Start: rangeStart, End: sorted[0].Start})
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start > sorted[i-1].End {
			gaps = append(gaps, Interval{Start: sorted[i-1].End, End: sorted[i].Start})
		}
	}
	if last := sorted[len(sorted)-1]; rangeEnd > last.End {
		gaps = append(gaps, Interval{Start: last.End, End: rangeEnd})
	}

	return gaps
}

// MergeAndFillGaps runs the full pipeline over the two label sets: merge
// each label, take the union of both to find where data exists at all, and
// reclassify every uncovered stretch as away. No signal means the subject
// was away, not that data is missing; a machine that is off or unreachable
// reports nothing.
//
// The gap range starts at the first covered instant (or queryStart when
// nothing is covered) and ends at min(queryEnd, now) so the future is never
// counted as away time. Empty inputs yield empty or single-gap outputs,
// never an error.
func MergeAndFillGaps(active, away []Interval, queryStart, queryEnd, now float64) (mergedActive, mergedAway []Interval) {
	mergedActive = Merge(active)
	mergedAway = Merge(away)

	union := make([]Interval, 0, len(mergedActive)+len(mergedAway))
	union = append(union, mergedActive...)
	union = append(union, mergedAway...)
	covered := Merge(union)

	rangeStart := queryStart
	if len(covered) > 0 {
		rangeStart = covered[0].Start
	}
	rangeEnd := queryEnd
	if now < rangeEnd {
		rangeEnd = now
	}

	if gaps := FindGaps(covered, rangeStart, rangeEnd); len(gaps) > 0 {
		mergedAway = Merge(append(mergedAway, gaps...))
	}

	return mergedActive, mergedAway
}
