package ticketmaster

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dghubble/sling"

	"github.com/tgardener/metro-gigs/internal/event"
)

const (
	// BaseURL is the discovery API root for event searches.
	BaseURL = "https://app.ticketmaster.com/discovery/v2/"

	// UserAgent identifies this client to the discovery API.
	UserAgent = "metro-gigs/1.0 (github.com/tgardener/metro-gigs)"

	// Timeout bounds the single outbound request. There are no retries,
	// so hitting it aborts the run.
	Timeout = 30 * time.Second

	// PageSize caps a search at one page of results. Markets with more
	// upcoming events than this are truncated, not paginated.
	PageSize = 200

	// maxErrorBody caps how much of an error response body is kept for
	// diagnostics.
	maxErrorBody = 64 << 10
)

// searchParams are the query parameters for an events search, encoded by
// go-querystring via sling.
type searchParams struct {
	APIKey             string `url:"apikey"`
	LatLong            string `url:"latlong"`
	Radius             int    `url:"radius"`
	Unit               string `url:"unit"`
	ClassificationName string `url:"classificationName"`
	Sort               string `url:"sort"`
	Size               int    `url:"size"`
	StartDateTime      string `url:"startDateTime"`
	EndDateTime        string `url:"endDateTime"`
}

// Client talks to the Ticketmaster discovery API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	base       *sling.Sling
}

// New creates a discovery API client using the given key.
func New(apiKey string) *Client {
	return newWithBase(apiKey, BaseURL)
}

func newWithBase(apiKey, baseURL string) *Client {
	httpClient := &http.Client{Timeout: Timeout}
	return &Client{
		apiKey:     apiKey,
		httpClient: httpClient,
		base: sling.New().Client(httpClient).Base(baseURL).
			Set("User-Agent", UserAgent),
	}
}

// SearchWindow fetches music events around (lat, lon) within radiusMiles,
// for the window [now, now+days), sorted by date ascending. A non-2xx
// response yields a *FetchError; no retries are attempted.
func (c *Client) SearchWindow(lat, lon float64, radiusMiles, days int, now time.Time) (*Response, error) {
	start := now.UTC()
	end := start.AddDate(0, 0, days)

	params := &searchParams{
		APIKey:             c.apiKey,
		LatLong:            FormatLatLong(lat, lon),
		Radius:             radiusMiles,
		Unit:               "miles",
		ClassificationName: "music",
		Sort:               "date,asc",
		Size:               PageSize,
		StartDateTime:      start.Format(event.TimeLayout),
		EndDateTime:        end.Format(event.TimeLayout),
	}

	req, err := c.base.New().Get("events.json").QueryStruct(params).Request()
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Best-effort body read for diagnostics. An unreadable body is
		// reported as empty, never as a second failure.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        req.URL.String(),
			Body:       string(body),
		}
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return &result, nil
}

// FormatLatLong renders coordinates as the comma-joined pair the latlong
// query parameter expects, with no trailing zeros.
func FormatLatLong(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}
