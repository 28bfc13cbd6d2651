package sessionid

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrymomot/rtckit/core/wire"
)

// fieldSeparator delimits identifier fields inside the encoded blob.
// Part of the wire contract with the remote service.
const fieldSeparator = "~"

// Field positions within the decoded record. Ordering is fixed by the format
// version; future versions may append fields but never reorder these.
const (
	fieldFormatVersion = iota
	fieldAccountKey
	fieldCreatedAt
	fieldNonce
	fieldLocationHint
	fieldCount
)

var codec = wire.NewCodec(fieldSeparator)

// Identifier is the structured record carried by a session identifier string.
// Immutable once decoded.
type Identifier struct {
	// FormatVersion is the identifier layout version assigned by the service.
	FormatVersion int

	// AccountKey is the key of the account that created the session.
	AccountKey int

	// CreatedAt is the session creation time with millisecond precision.
	CreatedAt time.Time

	// Nonce is the random value the service embedded at creation time.
	Nonce string

	// LocationHint is the optional media-server location hint. Empty when the
	// session was created without one.
	LocationHint string
}

// Decode parses a session identifier string issued by the remote service.
// It fails with ErrInvalidSessionID when the string is empty, the canonical
// decoding fails, or the account key field is absent or not numeric. Unknown
// trailing fields appended by future format versions are ignored.
func Decode(sessionID string) (Identifier, error) {
	if sessionID == "" {
		return Identifier{}, fmt.Errorf("%w: empty session id", ErrInvalidSessionID)
	}

	fields, err := codec.Decode(sessionID)
	if err != nil {
		return Identifier{}, errors.Join(ErrInvalidSessionID, err)
	}
	if len(fields) <= fieldAccountKey {
		return Identifier{}, fmt.Errorf("%w: missing account key", ErrInvalidSessionID)
	}

	accountKey, err := strconv.Atoi(fields[fieldAccountKey])
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: account key is not numeric", ErrInvalidSessionID)
	}

	id := Identifier{AccountKey: accountKey}

	// The remaining fields are informational; a record that carries only the
	// account key still identifies the owning account.
	if v, err := strconv.Atoi(fields[fieldFormatVersion]); err == nil {
		id.FormatVersion = v
	}
	if len(fields) > fieldCreatedAt {
		if ms, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64); err == nil {
			id.CreatedAt = time.UnixMilli(ms).UTC()
		}
	}
	if len(fields) > fieldNonce {
		id.Nonce = fields[fieldNonce]
	}
	if len(fields) > fieldLocationHint {
		id.LocationHint = fields[fieldLocationHint]
	}

	return id, nil
}

// Encode serializes an identifier into its wire form. The SDK never calls
// this on the critical path; it exists for round-trip symmetry with Decode
// and for building test fixtures.
func Encode(id Identifier) string {
	fields := make([]string, fieldCount)
	fields[fieldFormatVersion] = strconv.Itoa(id.FormatVersion)
	fields[fieldAccountKey] = strconv.Itoa(id.AccountKey)
	fields[fieldCreatedAt] = strconv.FormatInt(id.CreatedAt.UnixMilli(), 10)
	fields[fieldNonce] = id.Nonce
	fields[fieldLocationHint] = id.LocationHint
	return codec.Encode(fields)
}
