package formatter

import "github.com/penwyp/go-activity-monitor/internal/core/model"

// Formatter renders a computed activity report to stdout.
type Formatter interface {
	Format(report *model.ActivityReport) error
}

// New returns the formatter for the given output name, defaulting to table.
func New(output string) Formatter {
	switch output {
	case "json":
		return NewJSONFormatter()
	case "csv":
		return NewCSVFormatter()
	case "summary":
		return NewSummaryFormatter()
	default:
		return NewTableFormatter()
	}
}
