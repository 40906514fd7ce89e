// Package storage writes the events.json output document.
//
// The document is written as indented JSON with a full overwrite each run.
// This is a best-effort batch job: there is no partial-write protection
// and no merging with previous output.
package storage
