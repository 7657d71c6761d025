package formatter

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/penwyp/go-activity-monitor/internal/core/model"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

// CSVFormatter emits the merged timeline, one row per interval, in
// chronological order as assembled by the report builder.
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(report *model.ActivityReport) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	headers := []string{"Label", "Start", "End", "Seconds"}
	if err := w.Write(headers); err != nil {
		return err
	}

	tp := util.GetTimeProvider()
	for _, rec := range report.Timeline {
		record := []string{
			string(rec.Label),
			tp.FormatEpoch(rec.Start, time.RFC3339),
			tp.FormatEpoch(rec.End(), time.RFC3339),
			fmt.Sprintf("%.3f", rec.Duration),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
