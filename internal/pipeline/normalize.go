package pipeline

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tgardener/metro-gigs/internal/allowlist"
	"github.com/tgardener/metro-gigs/internal/event"
	"github.com/tgardener/metro-gigs/internal/logger"
	"github.com/tgardener/metro-gigs/internal/ticketmaster"
)

// Normalize flattens raw discovery API events into the output schema,
// applying the venue allowlist. Events without an id or an embedded venue
// are skipped; missing optional fields degrade to empty strings, never
// failing the batch. Upstream order (date ascending) is preserved, so no
// re-sort happens here.
func Normalize(raw []ticketmaster.RawEvent, allow allowlist.Allowlist) []*event.Event {
	events := make([]*event.Event, 0, len(raw))

	for i := range raw {
		re := &raw[i]

		if re.ID == "" {
			logger.Debug("Skipping event without id", logger.Fields{"name": re.Name})
			continue
		}

		venue := re.Venue()
		if venue == nil {
			logger.Debug("Skipping event without venue", logger.Fields{
				"id":   re.ID,
				"name": re.Name,
			})
			continue
		}

		if !allow.Allows(venue.Name) {
			continue
		}

		start := re.Dates.Start
		events = append(events, &event.Event{
			ID:          re.ID,
			Name:        re.Name,
			URL:         re.URL,
			DateLocal:   event.LocalDate(start.DateTime, start.LocalDate),
			DateDisplay: event.DisplayDate(start.LocalDate, start.LocalTime, start.DateTime),
			City:        venue.City.Name,
			State:       venue.State.StateCode,
			VenueName:   venue.Name,
			VenueURL:    venue.URL,
			VenueID:     venue.ID,
			Slug:        event.Slugify(re.Name, venue.Name, start.LocalDate, re.ID),
			Source:      event.SourceTicketmaster,
			Notes:       stripHTML(joinNotes(re.Info, re.PleaseNote)),
		})
	}

	return events
}

func joinNotes(info, pleaseNote string) string {
	switch {
	case info != "" && pleaseNote != "":
		return info + "\n\n" + pleaseNote
	case info != "":
		return info
	default:
		return pleaseNote
	}
}

// stripHTML reduces an upstream HTML fragment to plain text. Event info
// blurbs routinely embed markup; only the text survives into calendar
// descriptions and verbose output.
func stripHTML(s string) string {
	if s == "" || !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
