package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-activity-monitor/internal/core/model"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

// SummaryFormatter is responsible for formatting and outputting the full
// activity summary report.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format outputs the summary: query window, active/away breakdown and the
// top applications.
func (f *SummaryFormatter) Format(report *model.ActivityReport) error {
	tp := util.GetTimeProvider()

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Activity Summary Report")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	fmt.Printf("Query Window: %s to %s\n",
		tp.FormatEpoch(report.QueryStart, time.DateTime),
		tp.FormatEpoch(report.QueryEnd, time.DateTime))
	fmt.Printf("Generated At: %s\n", tp.Format(time.Unix(report.GeneratedAt, 0), time.DateTime))
	fmt.Println()

	observed := report.Summary.ActiveSeconds + report.Summary.AwaySeconds
	fmt.Println("Time Breakdown:")
	fmt.Printf("  Active: %s (%s)\n", report.ActiveText,
		util.FormatPercent(report.Summary.ActiveSeconds, observed))
	fmt.Printf("  Away:   %s (%s)\n", report.AwayText,
		util.FormatPercent(report.Summary.AwaySeconds, observed))
	fmt.Printf("  Observed Span: %s\n", util.FormatSeconds(observed))
	fmt.Println()

	if len(report.Apps) > 0 {
		fmt.Println("Top Applications:")
		fmt.Println(strings.Repeat("-", 60))
		for i, app := range report.Apps {
			fmt.Printf("%2d. %-30s %s\n", i+1, app.Name, app.Text)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("=", 60))
	return nil
}
