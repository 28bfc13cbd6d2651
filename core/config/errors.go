package config

import "errors"

var (
	// ErrParseFailed is returned when environment variables cannot be parsed
	// into the target struct, including missing required variables.
	ErrParseFailed = errors.New("failed to parse environment configuration")
)
