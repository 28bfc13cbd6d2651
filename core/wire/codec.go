package wire

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Codec is a reversible mapping between an ordered list of field strings and
// a single URL-safe text string. The zero value is not usable; construct one
// with NewCodec.
type Codec struct {
	sep string
}

// NewCodec creates a codec with the given field separator. The separator must
// not appear inside field values; callers that need to carry arbitrary bytes
// in a field escape them before encoding.
func NewCodec(sep string) Codec {
	return Codec{sep: sep}
}

// Encode joins the fields with the codec separator and encodes the blob as
// URL-safe base64 without padding. Deterministic: identical input always
// yields an identical string.
func (c Codec) Encode(fields []string) string {
	blob := strings.Join(fields, c.sep)
	return base64.RawURLEncoding.EncodeToString([]byte(blob))
}

// Decode reverses Encode. It fails with ErrMalformedEncoding when the string
// is empty, contains characters outside the URL-safe base64 alphabet, or the
// decoded blob is empty. Up to two trailing padding characters are accepted
// for compatibility with previously issued identifiers.
func (c Codec) Decode(s string) ([]string, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformedEncoding)
	}

	// Older service versions issued padded base64; tolerate it on decode only.
	trimmed := s
	for i := 0; i < 2; i++ {
		trimmed = strings.TrimSuffix(trimmed, "=")
	}
	if strings.HasSuffix(trimmed, "=") {
		return nil, fmt.Errorf("%w: excessive padding", ErrMalformedEncoding)
	}

	blob, err := base64.RawURLEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedEncoding, err)
	}
	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedEncoding)
	}

	return strings.Split(string(blob), c.sep), nil
}
