package rtckit

import "errors"

var (
	// ErrInvalidCredential is returned when a client is constructed with a
	// non-positive account key or an empty account secret.
	ErrInvalidCredential = errors.New("invalid account credential")
)
