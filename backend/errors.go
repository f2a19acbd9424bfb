package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the backend, carrying the contract's
// {detail} message when one was sent.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Detail)
}

func apiStatus(err error) (int, string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Detail, true
	}
	return 0, "", false
}

// IsUnauthorized reports a rejected or expired bearer token.
func IsUnauthorized(err error) bool {
	status, _, ok := apiStatus(err)
	return ok && status == http.StatusUnauthorized
}

// IsNotFound reports a missing resource.
func IsNotFound(err error) bool {
	status, _, ok := apiStatus(err)
	return ok && status == http.StatusNotFound
}

// IsSlotConflict reports that the backend refused a booking because the
// selected date or time is no longer free. Client-side availability is
// advisory only; this is the authoritative answer, and the recovery is to
// re-resolve availability, never to retry the same request.
func IsSlotConflict(err error) bool {
	status, detail, ok := apiStatus(err)
	if !ok || status != http.StatusBadRequest {
		return false
	}
	switch detail {
	case "Time slot already booked", "Time slot not available", "Date not available":
		return true
	}
	return false
}
