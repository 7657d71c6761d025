package interval

import "sort"

// Merge canonicalizes an interval list: sorted ascending by start, with
// overlapping or touching intervals collapsed into single runs. Adjacency is
// inclusive (next.Start <= cur.End merges), so zero-width seams between
// back-to-back intervals never surface as micro-gaps later. The input is not
// modified. Idempotent.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := make([]Interval, 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start <= cur.End {
			if next.End > cur.End {
				cur.End = next.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = next
	}

	return append(merged, cur)
}
