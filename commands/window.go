package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/penwyp/go-activity-monitor/internal/core/constants"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

// queryWindow resolves the --start/--end/--duration flags into a concrete
// window. Precedence: explicit --start wins over --duration; with neither,
// the window is the last 24 hours.
func queryWindow() (start, end time.Time, err error) {
	now := util.GetTimeProvider().Now()

	end = now
	if endStr != "" {
		if end, err = parseTimeFlag(endStr, now.Location()); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --end: %w", err)
		}
	}

	switch {
	case startStr != "":
		if start, err = parseTimeFlag(startStr, now.Location()); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --start: %w", err)
		}
	case duration != "":
		lookback, err := parseLookback(duration)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = end.Add(-lookback)
	default:
		start = end.Add(-constants.DefaultWindow)
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("window start %s is not before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return start, end, nil
}

func parseTimeFlag(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, value, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("expected RFC3339 or YYYY-MM-DD, got %q", value)
}

var lookbackRe = regexp.MustCompile(`(\d+)([hdw])`)

// parseLookback parses compound lookback strings like "12h", "7d" or "1w2d".
func parseLookback(value string) (time.Duration, error) {
	matches := lookbackRe.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("invalid duration format: %s", value)
	}

	var total time.Duration
	for _, match := range matches {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, fmt.Errorf("invalid number in duration: %s", match[1])
		}

		switch match[2] {
		case "h":
			total += time.Duration(n) * time.Hour
		case "d":
			total += time.Duration(n) * 24 * time.Hour
		case "w":
			total += time.Duration(n) * 7 * 24 * time.Hour
		}
	}
	return total, nil
}
