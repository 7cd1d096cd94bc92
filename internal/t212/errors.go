package t212

import (
	"errors"
	"fmt"
)

// ErrorKind classifies API failures so callers can branch without
// string-matching messages.
type ErrorKind string

const (
	// KindAuth means the API rejected the credentials (HTTP 401).
	KindAuth ErrorKind = "authentication"
	// KindRateLimited means the retry budget was exhausted on HTTP 429.
	KindRateLimited ErrorKind = "rate_limited"
	// KindAPI covers any other non-2xx response.
	KindAPI ErrorKind = "api"
	// KindConnection means the host could not be reached.
	KindConnection ErrorKind = "connection"
	// KindTimeout means the per-call deadline elapsed.
	KindTimeout ErrorKind = "timeout"
)

// APIError is the single error type returned by the client. Status and Body
// are only populated for KindAPI.
type APIError struct {
	Kind   ErrorKind
	Status int
	Body   string
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindAuth:
		return "authentication failed: check TRADING212_API_KEY and TRADING212_API_SECRET in your environment"
	case KindRateLimited:
		return "rate limited by Trading 212 after multiple retries"
	case KindConnection:
		return "cannot connect to Trading 212: check your internet connection"
	case KindTimeout:
		return "Trading 212 API request timed out, try again"
	default:
		return fmt.Sprintf("Trading 212 API error %d: %s", e.Status, e.Body)
	}
}

// KindOf extracts the error kind from any error in the chain. Returns an
// empty kind when err did not originate from the client.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}
