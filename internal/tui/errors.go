package tui

import (
	"errors"
	"strings"
)

var (
	// ErrInputClosed is returned once the input stream is exhausted or the
	// user cancelled a masked prompt.
	ErrInputClosed = errors.New("input closed")

	// ErrInvalidNumber is returned when a numeric prompt gets something that
	// does not parse as a number.
	ErrInvalidNumber = errors.New("invalid number")
)

// HumanizeError turns a fatal error into a one-line message for the user.
// Network failures get a fixed explanation; anything else is shown as is.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The network is down or the server is unavailable"
	}

	return err.Error()
}
