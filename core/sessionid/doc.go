// Package sessionid decodes the session identifier strings issued by the
// remote service, without any network access.
//
// An identifier is the canonical wire encoding (see core/wire) of an ordered
// record: format version, account key, creation timestamp, random nonce, and
// an optional location hint. The account key is the only field the SDK
// requires; it is used to verify that a session belongs to the caller's
// account before a token is minted for it.
//
// Parsing is forward compatible: identifiers produced by future format
// versions may append fields the SDK does not know about, and those are
// ignored rather than rejected.
//
// Encode is provided for symmetry and test fixtures only. Real identifiers
// are always produced by the remote service, never synthesized locally.
package sessionid
