// Package calendar renders an iCalendar export of the normalized events.
//
// The export is a convenience sidecar to events.json, written only when
// requested. One VCALENDAR holds one VEVENT per event; bare local dates
// become all-day entries.
package calendar
