package wire_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rtckit/core/wire"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := wire.NewCodec("~")

	cases := [][]string{
		{"1", "40000", "1712345678901"},
		{"single"},
		{"1", "40000", "", "", ""},
		{"with spaces", "and&ampersands", "and=equals"},
	}

	for _, fields := range cases {
		encoded := codec.Encode(fields)
		decoded, err := codec.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, fields, decoded)
	}
}

func TestCodec_Deterministic(t *testing.T) {
	codec := wire.NewCodec("~")
	fields := []string{"1", "40000", "nonce"}

	assert.Equal(t, codec.Encode(fields), codec.Encode(fields))
}

func TestCodec_URLSafeAlphabet(t *testing.T) {
	codec := wire.NewCodec("~")

	// Input chosen so standard base64 would emit '+' and '/'.
	encoded := codec.Encode([]string{string([]byte{0xfb, 0xff, 0xfe})})
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, "/")
	assert.NotContains(t, encoded, "=")
}

func TestCodec_Decode_TrailingPadding(t *testing.T) {
	codec := wire.NewCodec("~")
	fields := []string{"1", "40000"}
	encoded := codec.Encode(fields)

	for _, padded := range []string{encoded + "=", encoded + "=="} {
		decoded, err := codec.Decode(padded)
		require.NoError(t, err, "padding should be tolerated: %q", padded)
		assert.Equal(t, fields, decoded)
	}

	_, err := codec.Decode(encoded + "===")
	require.Error(t, err)
	assert.ErrorIs(t, err, wire.ErrMalformedEncoding)
}

func TestCodec_Decode_Malformed(t *testing.T) {
	codec := wire.NewCodec("~")

	cases := map[string]string{
		"empty string":      "",
		"invalid alphabet":  "abc+def/ghi",
		"non-base64 bytes":  "!!!not-base64!!!",
		"whitespace inside": "ab cd",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, wire.ErrMalformedEncoding)
		})
	}
}

func TestCodec_Decode_EmptyBlob(t *testing.T) {
	codec := wire.NewCodec("~")

	// A valid base64 encoding of zero bytes decodes to nothing.
	_, err := codec.Decode(base64.RawURLEncoding.EncodeToString(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, wire.ErrMalformedEncoding)
}
