// Package source supplies raw watcher events, either from a live
// ActivityWatch server or from an exported snapshot file. The engine itself
// never talks to a source; the application layer fetches and hands plain
// data in.
package source

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/penwyp/go-activity-monitor/internal/core/model"
)

// EventSource supplies raw events for a named bucket over a time range.
type EventSource interface {
	Buckets(ctx context.Context) (map[string]Bucket, error)
	Events(ctx context.Context, bucketID string, start, end time.Time) ([]model.Event, error)
}

// Bucket describes one watcher's event stream.
type Bucket struct {
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	Client   string `json:"client,omitempty"`
	Hostname string `json:"hostname,omitempty"`
}

// FindBucket returns the ID of the first bucket whose ID contains the given
// watcher name. Bucket IDs carry a hostname suffix (for example
// "aw-watcher-afk_myhost"), so discovery matches by substring. IDs are
// scanned in sorted order to keep discovery deterministic.
func FindBucket(buckets map[string]Bucket, watcher string) (string, bool) {
	ids := make([]string, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if strings.Contains(id, watcher) {
			return id, true
		}
	}
	return "", false
}
