// Package event provides the normalized event model written to events.json.
//
// The event package owns slug generation and the date fallback rules that
// turn the discovery API's nested date fields into the flat dateLocal and
// dateDisplay values downstream templates consume. Slugs are deterministic:
// the same name, venue, date and event ID always yield the same slug, so
// re-running the pipeline on unchanged upstream data keeps URLs stable.
package event
