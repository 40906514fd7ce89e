package event

// DisplayDate derives the human-readable date string for an event.
// Preference order: "localDate localTime" when both are present, then
// localDate alone, then the raw UTC timestamp, then empty. The order
// matters: a bare localDate is more useful to readers than a UTC instant
// that may be off by a timezone.
func DisplayDate(localDate, localTime, utc string) string {
	switch {
	case localDate != "" && localTime != "":
		return localDate + " " + localTime
	case localDate != "":
		return localDate
	case utc != "":
		return utc
	default:
		return ""
	}
}

// LocalDate picks the machine-readable date for an event, preferring the
// upstream UTC timestamp and falling back to the bare local date string.
func LocalDate(utc, localDate string) string {
	if utc != "" {
		return utc
	}
	return localDate
}
