package dictionary

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the definitions API answers with anything other than 200
	// or with an empty result.
	ErrNotFound = errors.New("word not found")
	// ErrUnavailable is returned when the word of the day cannot be fetched
	ErrUnavailable = errors.New("word of the day unavailable")
	// ErrMalformedResponse is returned when an API body cannot be decoded
	ErrMalformedResponse = errors.New("malformed response")
)

// statusError carries a retryable upstream status code
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.code)
}
