package ticketmaster

import "fmt"

// FetchError reports a non-success HTTP response from the discovery API.
// It carries everything needed to diagnose the failure offline: status
// code, status line, the request URL and the raw response body. Fetch
// failures are fatal to the run; there is no retry.
type FetchError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("discovery API: GET %s: %s: %s", e.URL, e.Status, e.Body)
}
