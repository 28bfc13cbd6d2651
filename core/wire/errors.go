package wire

import "errors"

var (
	// ErrMalformedEncoding is returned when a string cannot be decoded back
	// into separator-delimited fields per the wire format.
	ErrMalformedEncoding = errors.New("malformed wire encoding")
)
