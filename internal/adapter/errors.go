package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected matches every [*StatusError].
	ErrRejected = errors.New("request rejected by server")

	// ErrMalformedResponse is returned when a successful envelope carries a
	// payload that does not fit the endpoint schema, or the body is not JSON.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnexpectedResponse is returned when the server answered with a
	// non-2xx HTTP status and a body that is not an envelope.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// StatusError is a request the server understood and refused. Message is the
// server's own explanation, if it gave one.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api status %d", e.Status)
	}
	return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
}

// Is makes errors.Is(err, ErrRejected) true for any *StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrRejected
}
