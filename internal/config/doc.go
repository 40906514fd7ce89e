// Package config resolves per-run configuration from the environment.
//
// The only required setting is TICKETMASTER_API_KEY; a blank or missing
// key fails the run before any network activity. Market coordinates,
// radius and lookahead window default to the Indianapolis metro and can be
// overridden per variable or wholesale via an optional YAML market file.
package config
