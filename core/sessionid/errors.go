package sessionid

import "errors"

var (
	// ErrInvalidSessionID is returned when a session identifier is empty,
	// cannot be decoded, or is missing the account key field.
	ErrInvalidSessionID = errors.New("session id is not valid")
)
