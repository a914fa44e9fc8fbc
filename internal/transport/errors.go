package transport

import "fmt"

// RequestError represents a non-2xx response from the server on a verb that
// enforces success. ErrorMessage carries the server's "error" field when the
// failure body contained one; BodyMalformed reports that it did not, so
// callers can tell an API-reported error from an unreadable failure body.
type RequestError struct {
	StatusCode    int    // HTTP status code of the response
	Reason        string // reason phrase for the status code
	ErrorMessage  string // error message from the response body, if any
	BodyMalformed bool   // true when the failure body had no readable error field
}

// Error implements the error interface for RequestError.
func (e *RequestError) Error() string {
	if e.ErrorMessage != "" {
		return fmt.Sprintf("request failed: %d %s: %s", e.StatusCode, e.Reason, e.ErrorMessage)
	}
	return fmt.Sprintf("request failed: %d %s", e.StatusCode, e.Reason)
}

// DecodeError represents a response body that could not be deserialized into
// the expected type. It is only produced after a success status was
// confirmed, so it is always distinct from RequestError.
type DecodeError struct {
	Type string // name of the type the body failed to decode into
	Err  error  // underlying decode failure
}

// Error implements the error interface for DecodeError.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response as %s: %v", e.Type, e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
