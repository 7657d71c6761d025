package formatter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-activity-monitor/internal/core/model"
)

func TestJSONFormatterRoundTrip(t *testing.T) {
	report := sampleReport(t)

	output := captureOutput(t, func() error {
		return NewJSONFormatter().Format(report)
	})

	var decoded model.ActivityReport
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))

	assert.Equal(t, report.Summary, decoded.Summary)
	assert.Equal(t, report.ActiveText, decoded.ActiveText)
	assert.Len(t, decoded.Apps, 2)
	assert.Len(t, decoded.Timeline, 2)
}

func TestJSONFormatterEmptyReport(t *testing.T) {
	output := captureOutput(t, func() error {
		return NewJSONFormatter().Format(&model.ActivityReport{})
	})

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.NotContains(t, decoded, "apps", "empty slices are omitted")
}
