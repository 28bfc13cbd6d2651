package gateway

import "errors"

var (
	// ErrInvalidConfig is returned when a gateway implementation is
	// constructed with incomplete or inconsistent configuration.
	ErrInvalidConfig = errors.New("invalid gateway configuration")
	// ErrInvalidArchiveID is returned when an archive identifier is empty or
	// not a valid UUID, before any request is issued.
	ErrInvalidArchiveID = errors.New("archive id is not valid")
	// ErrRequestFailed is returned when a request to the remote service could
	// not be completed or the service reported an error status.
	ErrRequestFailed = errors.New("session service request failed")
	// ErrUnexpectedResponse is returned when the remote service answered
	// successfully but the response body could not be interpreted.
	ErrUnexpectedResponse = errors.New("unexpected session service response")
	// ErrNotFound is returned when the remote service reports that the
	// requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
)
