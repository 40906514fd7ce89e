package event

// Market describes the geographic search area and lookahead window a run
// was configured for. It is echoed into the output document so the site
// generator can label the listing without knowing the configuration.
type Market struct {
	Label       string  `json:"label"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	RadiusMiles int     `json:"radiusMiles"`
	DaysAhead   int     `json:"daysAhead"`
}

// Document is the full output written to events.json. Each run replaces
// the previous document in full; there is no merging across runs.
type Document struct {
	GeneratedAt string   `json:"generatedAt"`
	Market      Market   `json:"market"`
	Count       int      `json:"count"`
	Events      []*Event `json:"events"`
}
