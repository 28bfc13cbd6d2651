// Package wire implements the canonical text encoding shared by session
// identifiers and token payloads.
//
// A codec joins an ordered list of field strings with a fixed separator and
// encodes the whole blob as URL-safe base64 without padding. Decoding is the
// exact reverse and is strict about the alphabet: any character outside the
// URL-safe base64 set fails with ErrMalformedEncoding. One or two trailing
// padding characters are tolerated for compatibility with identifiers issued
// by older service versions.
//
// Field ordering is part of the wire contract with the remote service, so the
// codec never reorders, trims, or deduplicates fields.
//
// Basic usage:
//
//	codec := wire.NewCodec("~")
//	s := codec.Encode([]string{"1", "40000", "1712345678901"})
//	fields, err := codec.Decode(s)
package wire
