package formatter

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-activity-monitor/internal/core/model"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

// captureOutput runs fn with stdout redirected to a pipe and returns what it
// printed.
func captureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	require.NoError(t, fnErr)

	return buf.String()
}

// sampleReport is one hour of data: 40 minutes active, 20 minutes away.
func sampleReport(t *testing.T) *model.ActivityReport {
	t.Helper()
	require.NoError(t, util.InitializeTimeProvider("UTC"))

	return &model.ActivityReport{
		QueryStart:  0,
		QueryEnd:    3600,
		GeneratedAt: 3600,
		Summary:     model.Summary{ActiveSeconds: 2400, AwaySeconds: 1200},
		ActiveText:  util.FormatSeconds(2400),
		AwayText:    util.FormatSeconds(1200),
		Apps: []model.AppUsage{
			{Name: "firefox", Seconds: 1800, Text: util.FormatSeconds(1800)},
			{Name: "alacritty", Seconds: 600, Text: util.FormatSeconds(600)},
		},
		Timeline: []model.TimelineRecord{
			{Label: model.LabelActive, Start: 0, Duration: 2400},
			{Label: model.LabelAway, Start: 2400, Duration: 1200},
		},
	}
}
