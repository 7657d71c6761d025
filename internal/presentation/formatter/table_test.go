package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatter(t *testing.T) {
	report := sampleReport(t)

	output := captureOutput(t, func() error {
		return NewTableFormatter().Format(report)
	})

	assert.Contains(t, output, "Window: 1970-01-01 00:00:00 to 1970-01-01 01:00:00")
	assert.Contains(t, output, "Active: 0 hrs 40 mins")
	assert.Contains(t, output, "| Application")
	assert.Contains(t, output, "firefox")
	assert.Contains(t, output, "75.0%") // firefox share of 2400s app total
}

func TestTableFormatterNoAppsSkipsTable(t *testing.T) {
	report := sampleReport(t)
	report.Apps = nil

	output := captureOutput(t, func() error {
		return NewTableFormatter().Format(report)
	})

	assert.NotContains(t, output, "+--")
	assert.Contains(t, output, "Away:")
}

func TestTableFormatterAlignment(t *testing.T) {
	report := sampleReport(t)

	output := captureOutput(t, func() error {
		return NewTableFormatter().Format(report)
	})

	var borders []string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "+") {
			borders = append(borders, line)
		}
	}
	require.Len(t, borders, 3)
	assert.Equal(t, borders[0], borders[1])
	assert.Equal(t, borders[0], borders[2])
}

func TestBarFormatter(t *testing.T) {
	report := sampleReport(t)

	f := &BarFormatter{width: 80}
	output := captureOutput(t, func() error {
		return f.Format(report)
	})

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], activeGlyph)
	assert.Contains(t, lines[1], awayGlyph)
	assert.Contains(t, lines[0], "00:00:00")
	assert.Contains(t, lines[0], "0 hrs 40 mins")
}

func TestBarFormatterEmptyTimeline(t *testing.T) {
	report := sampleReport(t)
	report.Timeline = nil

	output := captureOutput(t, func() error {
		return NewBarFormatter().Format(report)
	})

	assert.Contains(t, output, "No activity in the query window")
}

// Even a tiny interval gets a visible bar cell.
func TestBarFormatterMinimumCell(t *testing.T) {
	report := sampleReport(t)
	report.Timeline[0].Duration = 1

	f := &BarFormatter{width: 80}
	output := captureOutput(t, func() error {
		return f.Format(report)
	})

	assert.Contains(t, output, activeGlyph)
}
