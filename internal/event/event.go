package event

// SourceTicketmaster is the source tag stamped on every event fetched from
// the Ticketmaster discovery API.
const SourceTicketmaster = "ticketmaster"

// TimeLayout renders a UTC instant with second precision and a literal Z
// suffix. It is the format the discovery API expects for its time window
// parameters, and the format used for the output document's generatedAt.
const TimeLayout = "2006-01-02T15:04:05Z"

// Event is the normalized representation of a single upstream event,
// flattened to the stable schema the site generator consumes.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	DateLocal   string `json:"dateLocal"`
	DateDisplay string `json:"dateDisplay"`
	City        string `json:"city"`
	State       string `json:"state"`
	VenueName   string `json:"venueName"`
	VenueURL    string `json:"venueUrl"`
	VenueID     string `json:"venueId"`
	Slug        string `json:"slug"`
	Source      string `json:"source"`

	// Notes holds plain text stripped from the upstream info/pleaseNote
	// HTML. It feeds calendar descriptions and verbose output but is
	// never written to events.json.
	Notes string `json:"-"`
}
