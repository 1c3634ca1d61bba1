package rest

import (
	"fmt"
	"net/http"
)

// Client performs authenticated JSON requests against a single upstream API.
type Client struct {
	httpClient *http.Client
	service    string
	BaseURL    string
	authorize  func(req *http.Request)
}

// RemoteRequestError is returned when an upstream call completes with a non-success status.
type RemoteRequestError struct {
	Service    string
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("%s: %s %s returned status %d: %s", e.Service, e.Method, e.URL, e.StatusCode, e.Body)
}
