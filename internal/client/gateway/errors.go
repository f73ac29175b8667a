package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failed gateway call. Message holds the server's structured
// {error} field when the response carried one; Status is the HTTP status
// (0 for transport failures, where cause holds the underlying error).
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.cause != nil:
		return e.cause.Error()
	default:
		return fmt.Sprintf("unexpected status %d", e.Status)
	}
}

func (e *Error) Unwrap() error { return e.cause }

// IsTransport reports whether err is a gateway Error caused by a transport
// failure (no HTTP response at all).
func IsTransport(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Status == 0 && ge.cause != nil
}

// IsUnauthorized reports whether err is a gateway Error with a 401 status.
func IsUnauthorized(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Status == http.StatusUnauthorized
}

// DisplayMessage resolves the human-readable text for a failed action:
//  1. the server's structured error message, when present;
//  2. the call's own error message for local (non-gateway) failures,
//     e.g. client-side validation;
//  3. the hardcoded fallback otherwise — including transport failures,
//     whose raw messages are not fit for admins.
func DisplayMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var ge *Error
	if errors.As(err, &ge) {
		if ge.Message != "" {
			return ge.Message
		}
		return fallback
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
