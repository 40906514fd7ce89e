package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/tgardener/metro-gigs/internal/event"
)

// Generate renders an iCalendar document for the events in doc. Events
// whose dates cannot be parsed are left out of the calendar rather than
// given invented times.
func Generate(doc *event.Document) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//metro-gigs//metro-gigs//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	if doc.Market.Label != "" {
		fmt.Fprintf(&ics, "X-WR-CALNAME:%s\r\n", escapeICS("Live music - "+doc.Market.Label))
	}

	stamp := time.Now().UTC()
	for _, evt := range doc.Events {
		writeEvent(&ics, evt, stamp)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(b *strings.Builder, evt *event.Event, stamp time.Time) {
	start, allDay, ok := parseStart(evt.DateLocal)
	if !ok {
		return
	}

	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(b, "UID:%s@metro-gigs\r\n", evt.Slug)
	fmt.Fprintf(b, "DTSTAMP:%s\r\n", formatICSTime(stamp))

	if allDay {
		fmt.Fprintf(b, "DTSTART;VALUE=DATE:%s\r\n", start.Format("20060102"))
	} else {
		fmt.Fprintf(b, "DTSTART:%s\r\n", formatICSTime(start))
		// Show lengths are unknown upstream; block out three hours.
		fmt.Fprintf(b, "DTEND:%s\r\n", formatICSTime(start.Add(3*time.Hour)))
	}

	fmt.Fprintf(b, "SUMMARY:%s\r\n", escapeICS(evt.Name))

	location := evt.VenueName
	if evt.City != "" {
		location = fmt.Sprintf("%s, %s, %s", evt.VenueName, evt.City, evt.State)
	}
	fmt.Fprintf(b, "LOCATION:%s\r\n", escapeICS(location))

	if evt.Notes != "" {
		fmt.Fprintf(b, "DESCRIPTION:%s\r\n", escapeICS(evt.Notes))
	}
	if evt.URL != "" {
		fmt.Fprintf(b, "URL:%s\r\n", evt.URL)
	}

	b.WriteString("STATUS:CONFIRMED\r\n")
	b.WriteString("TRANSP:OPAQUE\r\n")
	b.WriteString("END:VEVENT\r\n")
}

// parseStart interprets dateLocal, which is either a UTC timestamp or a
// bare local date. A bare date becomes an all-day entry.
func parseStart(dateLocal string) (start time.Time, allDay bool, ok bool) {
	if dateLocal == "" {
		return time.Time{}, false, false
	}
	if t, err := time.Parse(event.TimeLayout, dateLocal); err == nil {
		return t, false, true
	}
	if t, err := time.Parse(time.RFC3339, dateLocal); err == nil {
		return t.UTC(), false, true
	}
	if t, err := time.Parse("2006-01-02", dateLocal); err == nil {
		return t, true, true
	}
	return time.Time{}, false, false
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters per RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
