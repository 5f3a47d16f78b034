// ABOUTME: Error taxonomy for the Alumni Connect API client
// ABOUTME: Distinguishes transport, application, session-expiry, and validation failures

package client

import "fmt"

// NetworkError is a transport or HTTP-level failure: connection refused,
// a non-2xx status with no interpretable body, or a malformed body.
// Application-level {success:false} responses are NOT network errors.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil && e.Status == 0 {
		return fmt.Sprintf("cannot connect to backend at %s: %v", e.URL, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid response from backend (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ApplicationError is a well-formed backend reply with success=false.
// Raised by callers that must surface the server message to the user.
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}

// SessionExpiredError is a 401/403 on an authenticated call. The client
// invalidates the session before returning it.
type SessionExpiredError struct {
	Status int
}

func (e *SessionExpiredError) Error() string {
	return fmt.Sprintf("session expired (status %d), please log in again", e.Status)
}

// ValidationError is a client-side required-field failure detected before
// any request is sent.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
