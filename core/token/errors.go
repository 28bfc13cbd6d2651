package token

import "errors"

var (
	// ErrAccountMismatch is returned when the account key embedded in a
	// session identifier differs from the credential's account key.
	ErrAccountMismatch = errors.New("session id does not match account key")
	// ErrInvalidRole is returned when the role is not one of the enumerated
	// values.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidExpiration is returned when a caller-provided expiration time
	// is not in the future or exceeds the maximum horizon.
	ErrInvalidExpiration = errors.New("invalid expiration time")
	// ErrConnectionDataTooLarge is returned when the encoded connection data
	// exceeds MaxConnectionDataSize bytes.
	ErrConnectionDataTooLarge = errors.New("connection data too large")
	// ErrSigningFailure is returned on a cryptographic precondition violation,
	// such as an absent account secret. This indicates a configuration error,
	// not a recoverable runtime condition.
	ErrSigningFailure = errors.New("token signing failed")
	// ErrInvalidToken is returned by Parse when a token string does not match
	// the wire format.
	ErrInvalidToken = errors.New("token is not valid")
	// ErrInvalidSignature is returned by Verify when a token's signature does
	// not match its payload under the given secret.
	ErrInvalidSignature = errors.New("token signature mismatch")
)
