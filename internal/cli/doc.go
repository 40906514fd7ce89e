// Package cli implements the metro-gigs command line interface.
//
// The root command runs the pipeline once and prints a run summary to
// stdout in text or JSON form. Structured logs go to stderr. Any fatal
// error (missing API key, upstream HTTP failure) propagates out of the
// command and the process exits non-zero.
package cli
