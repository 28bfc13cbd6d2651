package token

import "time"

// Default and maximum limits for token generation. The horizon and data size
// mirror the limits the remote service enforces on its side; deployments
// tracking different service limits should reference these constants rather
// than re-deriving the values.
const (
	// DefaultTTL is applied when Options.ExpireAt is zero.
	DefaultTTL = 24 * time.Hour
	// MaxTTL is the maximum allowed distance between token creation and
	// expiration.
	MaxTTL = 30 * 24 * time.Hour
	// MaxConnectionDataSize is the maximum encoded size of connection data in
	// bytes.
	MaxConnectionDataSize = 1000
)

// Credential is the per-account signing credential. Immutable for the
// lifetime of the SDK client; the secret is used only as the HMAC key and is
// never embedded in any token payload or log line.
type Credential struct {
	AccountKey int
	Secret     string
}

// Options defines caller-supplied token parameters. The zero value is valid:
// defaults are resolved when the payload is built, not at construction, so
// the type itself stays simple and side-effect-free.
type Options struct {
	// Role is the permission level for the token. Defaults to RolePublisher.
	Role Role

	// ExpireAt is the absolute expiration time. Must be in the future and at
	// most MaxTTL from now. Defaults to now + DefaultTTL.
	ExpireAt time.Time

	// ConnectionData is opaque metadata describing the end user, available to
	// other clients in the session. At most MaxConnectionDataSize bytes after
	// encoding.
	ConnectionData string

	// InitialLayoutClassList is the ordered list of layout class hints
	// applied to the client's streams when recording composition starts.
	InitialLayoutClassList []string
}
