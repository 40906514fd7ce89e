package ticketmaster

// Response is the top level of a discovery API events search.
type Response struct {
	Embedded struct {
		Events []RawEvent `json:"events"`
	} `json:"_embedded"`
	Page Page `json:"page"`
}

// Page is the discovery API's pagination block. Only a single page is
// requested per run, so TotalElements beyond the page size means the
// result set was truncated.
type Page struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// RawEvent is one event as returned by the discovery API. Read-only input;
// fields the pipeline does not consume are omitted from the struct.
type RawEvent struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Info       string `json:"info"`
	PleaseNote string `json:"pleaseNote"`
	Dates      Dates  `json:"dates"`
	Embedded   struct {
		Venues []Venue `json:"venues"`
	} `json:"_embedded"`
}

// Dates holds the start block of an event's dates object.
type Dates struct {
	Start Start `json:"start"`
}

// Start carries the three upstream date representations. Any of them can
// be absent for a given event.
type Start struct {
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
	DateTime  string `json:"dateTime"`
}

// Venue is an embedded venue object on a raw event.
type Venue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	State struct {
		StateCode string `json:"stateCode"`
	} `json:"state"`
}

// Venue returns the event's first embedded venue, or nil when upstream
// sent none. Upstream data is occasionally incomplete; callers skip
// venue-less events.
func (e *RawEvent) Venue() *Venue {
	if len(e.Embedded.Venues) == 0 {
		return nil
	}
	return &e.Embedded.Venues[0]
}
