package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tgardener/metro-gigs/internal/event"
)

func testDocument() *event.Document {
	return &event.Document{
		GeneratedAt: "2026-03-01T12:30:45Z",
		Market: event.Market{
			Label:       "Indianapolis, IN metro",
			Lat:         39.7684,
			Lon:         -86.1581,
			RadiusMiles: 35,
			DaysAhead:   180,
		},
		Count: 1,
		Events: []*event.Event{
			{
				ID:          "abc123",
				Name:        "Khruangbin",
				URL:         "https://tickets.example.com/abc123",
				DateLocal:   "2026-05-01T23:00:00Z",
				DateDisplay: "2026-05-01 19:00:00",
				City:        "Indianapolis",
				State:       "IN",
				VenueName:   "The Vogue",
				Slug:        "khruangbin-the-vogue-2026-05-01-abc123",
				Source:      "ticketmaster",
			},
		},
	}
}

func TestWriteDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	doc := testDocument()

	if err := WriteDocument(path, doc); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}

	got, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("ReadDocument failed: %v", err)
	}

	if got.GeneratedAt != doc.GeneratedAt || got.Count != doc.Count {
		t.Errorf("document metadata lost in round trip: %+v", got)
	}
	if len(got.Events) != 1 || got.Events[0].Slug != doc.Events[0].Slug {
		t.Errorf("events lost in round trip: %+v", got.Events)
	}
}

func TestWriteDocumentCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "data", "events.json")

	if err := WriteDocument(path, testDocument()); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected output file to exist: %v", err)
	}
}

func TestWriteDocumentOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")

	if err := os.WriteFile(path, []byte(`{"stale": true, "padding": "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"}`), 0644); err != nil {
		t.Fatalf("seeding stale file: %v", err)
	}

	if err := WriteDocument(path, testDocument()); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("previous file content must be fully replaced")
	}
}

func TestWriteDocumentIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")

	if err := WriteDocument(path, testDocument()); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"generatedAt\"") {
		t.Error("output should be two-space indented JSON")
	}
}

func TestWriteDocumentEmptyEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	doc := testDocument()
	doc.Count = 0
	doc.Events = []*event.Event{}

	if err := WriteDocument(path, doc); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), `"events": []`) {
		t.Errorf("empty events must serialize as [], got:\n%s", data)
	}
}
