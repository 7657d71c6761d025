package formatter

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/penwyp/go-activity-monitor/internal/core/model"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

// BarFormatter renders the merged timeline as one bar row per interval,
// scaled so the whole query window fits the terminal width.
type BarFormatter struct {
	// width overrides terminal detection when positive; used by tests.
	width int
}

func NewBarFormatter() *BarFormatter {
	return &BarFormatter{}
}

const (
	activeGlyph = "█"
	awayGlyph   = "░"

	// clock column, label column, duration text and spacing around the bar
	barMargin   = 34
	minBarWidth = 10
)

func (f *BarFormatter) Format(report *model.ActivityReport) error {
	span := report.QueryEnd - report.QueryStart
	if span <= 0 || len(report.Timeline) == 0 {
		fmt.Println("No activity in the query window")
		return nil
	}

	barWidth := f.barWidth()
	tp := util.GetTimeProvider()

	for _, rec := range report.Timeline {
		glyph := activeGlyph
		if rec.Label == model.LabelAway {
			glyph = awayGlyph
		}

		cells := int(rec.Duration / span * float64(barWidth))
		if cells < 1 {
			cells = 1
		}

		fmt.Printf("%s  %s %s %s\n",
			tp.FormatEpoch(rec.Start, time.TimeOnly),
			util.PadString(string(rec.Label), 6, true),
			util.PadString(strings.Repeat(glyph, cells), barWidth, true),
			util.FormatSeconds(rec.Duration))
	}

	return nil
}

func (f *BarFormatter) barWidth() int {
	width := f.width
	if width <= 0 {
		termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || termWidth < 60 {
			termWidth = 80
		}
		width = termWidth
	}

	barWidth := width - barMargin
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	return barWidth
}
