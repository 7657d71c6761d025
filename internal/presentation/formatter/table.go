package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-activity-monitor/internal/core/model"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"Application", "Time", "Share"},
	}
}

func (f *TableFormatter) Format(report *model.ActivityReport) error {
	tp := util.GetTimeProvider()
	fmt.Printf("Window: %s to %s\n",
		tp.FormatEpoch(report.QueryStart, time.DateTime),
		tp.FormatEpoch(report.QueryEnd, time.DateTime))

	observed := report.Summary.ActiveSeconds + report.Summary.AwaySeconds
	fmt.Printf("Active: %s (%s)\n", report.ActiveText,
		util.FormatPercent(report.Summary.ActiveSeconds, observed))
	fmt.Printf("Away:   %s (%s)\n", report.AwayText,
		util.FormatPercent(report.Summary.AwaySeconds, observed))

	if len(report.Apps) == 0 {
		return nil
	}
	fmt.Println()

	var appTotal float64
	for _, app := range report.Apps {
		appTotal += app.Seconds
	}

	rows := make([][]string, 0, len(report.Apps))
	for _, app := range report.Apps {
		rows = append(rows, []string{
			app.Name,
			app.Text,
			util.FormatPercent(app.Seconds, appTotal),
		})
	}

	widths := f.calculateColumnWidths(rows)
	f.printBorder(widths)
	f.printRow(f.headers, widths)
	f.printBorder(widths)
	for _, row := range rows {
		f.printRow(row, widths)
	}
	f.printBorder(widths)

	return nil
}

func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := util.GetDisplayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (f *TableFormatter) printBorder(widths []int) {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	fmt.Println("+" + strings.Join(parts, "+") + "+")
}

func (f *TableFormatter) printRow(cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		// Left-align names, right-align the numeric columns.
		parts[i] = " " + util.PadString(cell, widths[i], i == 0) + " "
	}
	fmt.Println("|" + strings.Join(parts, "|") + "|")
}
