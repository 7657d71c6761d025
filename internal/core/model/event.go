package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// Label is one of the two status categories every event maps onto.
type Label string

const (
	LabelActive Label = "active"
	LabelAway   Label = "away"
)

// ClassifyLabel folds a free-form event label into the two-category model.
// AFK watcher statuses count as away; everything else (window focus reports,
// application names, "not-afk") counts as active.
func ClassifyLabel(label string) Label {
	switch strings.ToLower(label) {
	case "afk", "away":
		return LabelAway
	default:
		return LabelActive
	}
}

// FlexibleTimestamp accepts either an ISO-8601 string or a numeric epoch
// value. Watchers are inconsistent about which one they emit. A value that
// parses as neither is kept as invalid rather than failing the surrounding
// document; normalization drops such events silently.
type FlexibleTimestamp struct {
	Epoch float64
	Valid bool
}

func (ft *FlexibleTimestamp) UnmarshalJSON(data []byte) error {
	// Unmarshalling null into a float64 is a no-op with a nil error, which
	// would leave a phantom epoch-0 timestamp marked valid.
	if string(data) == "null" {
		ft.Valid = false
		return nil
	}

	var num float64
	if err := sonic.Unmarshal(data, &num); err == nil {
		ft.Epoch = num
		ft.Valid = true
		return nil
	}

	var str string
	if err := sonic.Unmarshal(data, &str); err == nil {
		*ft = ParseTimestamp(str)
		return nil
	}

	ft.Valid = false
	return nil
}

func (ft FlexibleTimestamp) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(ft.Epoch)
}

// isoLayouts are tried in order when a timestamp arrives as a string. The
// last entry handles naive timestamps without a zone designator, which are
// read as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses a raw timestamp token: a numeric epoch value or an
// ISO-8601 string. A trailing "Z" is the UTC offset "+00:00".
func ParseTimestamp(raw string) FlexibleTimestamp {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FlexibleTimestamp{}
	}

	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		return FlexibleTimestamp{Epoch: num, Valid: true}
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return FlexibleTimestamp{Epoch: float64(t.UnixNano()) / 1e9, Valid: true}
		}
	}

	return FlexibleTimestamp{}
}

// EpochTimestamp wraps an already-numeric epoch value.
func EpochTimestamp(epoch float64) FlexibleTimestamp {
	return FlexibleTimestamp{Epoch: epoch, Valid: true}
}

// Event is a single watcher report as served by the ActivityWatch REST API
// or an exported snapshot file.
type Event struct {
	ID        int64             `json:"id,omitempty"`
	Timestamp FlexibleTimestamp `json:"timestamp"`
	Duration  float64           `json:"duration"`
	Data      EventData         `json:"data"`
}

// EventData carries the watcher-specific payload. AFK watchers set Status,
// window watchers set App and Title.
type EventData struct {
	App    string `json:"app,omitempty"`
	Title  string `json:"title,omitempty"`
	Status string `json:"status,omitempty"`
}

// RawEvent is the engine-facing view of an event: a free-form label plus a
// timestamp and duration. It is not retained after normalization.
type RawEvent struct {
	Label     string
	Timestamp FlexibleTimestamp
	Duration  float64
}
