package model

// Summary is the two-field active/away total. After gap filling,
// ActiveSeconds+AwaySeconds equals the covered span of the observed range,
// which is not necessarily the full query window.
type Summary struct {
	ActiveSeconds float64 `json:"activeSeconds"`
	AwaySeconds   float64 `json:"awaySeconds"`
}

// TimelineRecord is one merged interval tagged by label, for visualization.
type TimelineRecord struct {
	Label    Label   `json:"label"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// End returns the record's end as epoch seconds.
func (r TimelineRecord) End() float64 {
	return r.Start + r.Duration
}

// AppUsage is one application's share of the window-focus time.
type AppUsage struct {
	Name    string  `json:"name"`
	Title   string  `json:"title,omitempty"`
	Seconds float64 `json:"seconds"`
	Text    string  `json:"text"`
}

// ActivityReport is the full result of one query: totals, per-application
// breakdown and the merged timeline.
type ActivityReport struct {
	QueryStart  float64          `json:"queryStart"`
	QueryEnd    float64          `json:"queryEnd"`
	GeneratedAt int64            `json:"generatedAt"`
	Summary     Summary          `json:"summary"`
	ActiveText  string           `json:"activeText"`
	AwayText    string           `json:"awayText"`
	Apps        []AppUsage       `json:"apps,omitempty"`
	Timeline    []TimelineRecord `json:"timeline,omitempty"`
}
