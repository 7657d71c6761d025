package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-activity-monitor/internal/core/constants"
	"github.com/penwyp/go-activity-monitor/internal/core/model"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

// Client talks to a local ActivityWatch server's REST API.
type Client struct {
	host string
	http *http.Client
}

// NewClient creates a client for the given host, e.g. "http://localhost:5600".
func NewClient(host string) *Client {
	return &Client{
		host: strings.TrimRight(host, "/"),
		http: &http.Client{Timeout: constants.RequestTimeout},
	}
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	u := c.host + "/api/0/" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("activitywatch: GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("activitywatch: GET %s: %s", endpoint, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	util.LogDebugf("activitywatch: GET %s: %d bytes", endpoint, len(body))
	return sonic.Unmarshal(body, out)
}

// Buckets returns all available buckets keyed by ID.
func (c *Client) Buckets(ctx context.Context) (map[string]Bucket, error) {
	buckets := make(map[string]Bucket)
	if err := c.get(ctx, "buckets", nil, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

// Events returns the events of one bucket over [start, end]. A zero start or
// end leaves that side of the range open.
func (c *Client) Events(ctx context.Context, bucketID string, start, end time.Time) ([]model.Event, error) {
	query := url.Values{}
	query.Set("limit", "-1")
	if !start.IsZero() {
		query.Set("start", start.Format(time.RFC3339))
	}
	if !end.IsZero() {
		query.Set("end", end.Format(time.RFC3339))
	}

	var events []model.Event
	endpoint := "buckets/" + url.PathEscape(bucketID) + "/events"
	if err := c.get(ctx, endpoint, query, &events); err != nil {
		return nil, err
	}
	return events, nil
}
