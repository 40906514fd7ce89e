package ticketmaster

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"testing"
	"time"

	"github.com/tgardener/metro-gigs/internal/event"
)

const sampleResponse = `{
  "_embedded": {
    "events": [
      {
        "id": "vvG1zZ9K3qP7e8",
        "name": "Khruangbin",
        "url": "https://www.ticketmaster.com/khruangbin/event/vvG1zZ9K3qP7e8",
        "dates": {"start": {"localDate": "2026-09-12", "localTime": "20:00:00", "dateTime": "2026-09-13T00:00:00Z"}},
        "_embedded": {
          "venues": [
            {
              "id": "KovZpZA6t7lA",
              "name": "The Vogue",
              "url": "https://www.ticketmaster.com/the-vogue/venue/KovZpZA6t7lA",
              "city": {"name": "Indianapolis"},
              "state": {"stateCode": "IN"}
            }
          ]
        }
      },
      {
        "id": "orphan1",
        "name": "Mystery Show",
        "dates": {"start": {"localDate": "2026-09-14"}}
      }
    ]
  },
  "page": {"size": 200, "totalElements": 2, "totalPages": 1, "number": 0}
}`

func TestSearchWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 30, 45, 987654321, time.UTC)
	wantStart := "2026-03-01T12:30:45Z"
	wantEnd := now.AddDate(0, 0, 180).Format(event.TimeLayout)

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events.json" {
			t.Errorf("unexpected request path: %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := newWithBase("test-key", server.URL+"/")
	resp, err := client.SearchWindow(39.7684, -86.1581, 35, 180, now)
	if err != nil {
		t.Fatalf("SearchWindow failed: %v", err)
	}

	wantParams := map[string]string{
		"apikey":             "test-key",
		"latlong":            "39.7684,-86.1581",
		"radius":             "35",
		"unit":               "miles",
		"classificationName": "music",
		"sort":               "date,asc",
		"size":               "200",
		"startDateTime":      wantStart,
		"endDateTime":        wantEnd,
	}
	for key, want := range wantParams {
		if got := gotQuery.Get(key); got != want {
			t.Errorf("query param %s = %q, expected %q", key, got, want)
		}
	}

	events := resp.Embedded.Events
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.ID != "vvG1zZ9K3qP7e8" {
		t.Errorf("unexpected event ID: %s", first.ID)
	}
	if first.Dates.Start.LocalTime != "20:00:00" {
		t.Errorf("unexpected localTime: %s", first.Dates.Start.LocalTime)
	}

	venue := first.Venue()
	if venue == nil {
		t.Fatal("expected first event to have a venue")
	}
	if venue.Name != "The Vogue" || venue.City.Name != "Indianapolis" || venue.State.StateCode != "IN" {
		t.Errorf("unexpected venue fields: %+v", venue)
	}

	if events[1].Venue() != nil {
		t.Error("expected venue-less event to return nil venue")
	}
}

func TestSearchWindowTimestampFormat(t *testing.T) {
	// The discovery API rejects sub-second precision; both window bounds
	// must render as YYYY-MM-DDTHH:MM:SSZ exactly.
	utcZ := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, key := range []string{"startDateTime", "endDateTime"} {
			if v := r.URL.Query().Get(key); !utcZ.MatchString(v) {
				t.Errorf("%s = %q, expected format YYYY-MM-DDTHH:MM:SSZ", key, v)
			}
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newWithBase("test-key", server.URL+"/")
	if _, err := client.SearchWindow(39.7684, -86.1581, 35, 180, time.Now()); err != nil {
		t.Fatalf("SearchWindow failed: %v", err)
	}
}

func TestSearchWindowHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"fault":{"faultstring":"Invalid ApiKey"}}`))
	}))
	defer server.Close()

	client := newWithBase("bad-key", server.URL+"/")
	_, err := client.SearchWindow(39.7684, -86.1581, 35, 180, time.Now())
	if err == nil {
		t.Fatal("expected error for 401 response")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
	if fetchErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status code 401, got %d", fetchErr.StatusCode)
	}
	if fetchErr.URL == "" {
		t.Error("expected request URL in error")
	}
	if fetchErr.Body != `{"fault":{"faultstring":"Invalid ApiKey"}}` {
		t.Errorf("unexpected error body: %q", fetchErr.Body)
	}
}

func TestSearchWindowEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No _embedded key at all when a market has zero events
		w.Write([]byte(`{"page": {"size": 200, "totalElements": 0, "totalPages": 0, "number": 0}}`))
	}))
	defer server.Close()

	client := newWithBase("test-key", server.URL+"/")
	resp, err := client.SearchWindow(39.7684, -86.1581, 35, 180, time.Now())
	if err != nil {
		t.Fatalf("SearchWindow failed: %v", err)
	}
	if len(resp.Embedded.Events) != 0 {
		t.Errorf("expected 0 events, got %d", len(resp.Embedded.Events))
	}
}

func TestFormatLatLong(t *testing.T) {
	tests := []struct {
		lat, lon float64
		expected string
	}{
		{39.7684, -86.1581, "39.7684,-86.1581"},
		{0, 0, "0,0"},
		{41.5, -87, "41.5,-87"},
	}

	for _, tt := range tests {
		if got := FormatLatLong(tt.lat, tt.lon); got != tt.expected {
			t.Errorf("FormatLatLong(%v, %v) = %q, expected %q", tt.lat, tt.lon, got, tt.expected)
		}
	}
}
