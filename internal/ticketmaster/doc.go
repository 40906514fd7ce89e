// Package ticketmaster provides the HTTP client for the Ticketmaster
// discovery API.
//
// A single events search is issued per run: music events around a market's
// coordinates, sorted by date ascending, capped at one page of 200
// results. HTTP failures surface as *FetchError with the status, request
// URL and response body attached; the client never retries.
package ticketmaster
