package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/rtckit/core/sessionid"
)

const (
	// TokenPrefix is the version tag every token string starts with.
	TokenPrefix = "T1=="
	// SignatureVersion identifies the payload layout and signing scheme.
	SignatureVersion = 1

	// sigSeparator joins the encoded payload and the hex digest.
	sigSeparator = "&sig="
	// nonceSize is the entropy of the per-token nonce in bytes.
	nonceSize = 16
)

// Generate mints a signed access token for the given session. The session
// identifier must decode to the credential's account key; options are
// validated here and defaults applied (publisher role, 24h expiration, empty
// connection data).
//
// Pure apart from nonce randomness: no I/O, deterministic given identical
// inputs and nonce, safe for unsynchronized concurrent use.
func Generate(cred Credential, sessionID string, opts Options) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("%w: empty session id", sessionid.ErrInvalidSessionID)
	}

	id, err := sessionid.Decode(sessionID)
	if err != nil {
		return "", err
	}
	if id.AccountKey != cred.AccountKey {
		return "", fmt.Errorf("%w: session belongs to account %d", ErrAccountMismatch, id.AccountKey)
	}

	role := opts.Role
	if role == "" {
		role = RolePublisher
	}
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, opts.Role)
	}

	now := time.Now().UTC()
	expire := opts.ExpireAt
	if expire.IsZero() {
		expire = now.Add(DefaultTTL)
	} else {
		if !expire.After(now) {
			return "", fmt.Errorf("%w: expiration must be in the future", ErrInvalidExpiration)
		}
		if expire.After(now.Add(MaxTTL)) {
			return "", fmt.Errorf("%w: expiration exceeds maximum horizon of %s", ErrInvalidExpiration, MaxTTL)
		}
	}

	if size := len(url.QueryEscape(opts.ConnectionData)); size > MaxConnectionDataSize {
		return "", fmt.Errorf("%w: %d bytes after encoding, limit is %d",
			ErrConnectionDataTooLarge, size, MaxConnectionDataSize)
	}

	nonce, err := newNonce()
	if err != nil {
		return "", errors.Join(ErrSigningFailure, err)
	}

	payload := Payload{
		AccountKey:             cred.AccountKey,
		SessionID:              sessionID,
		CreateTime:             now,
		ExpireTime:             expire,
		Role:                   role,
		Nonce:                  nonce,
		ConnectionData:         opts.ConnectionData,
		InitialLayoutClassList: opts.InitialLayoutClassList,
		SignatureVersion:       SignatureVersion,
	}

	fields := payload.serialize()
	sig, err := sign(strings.Join(fields, "&"), cred.Secret)
	if err != nil {
		return "", err
	}

	return assemble(fields, sig), nil
}

// Parse decodes a token string back into its payload without verifying the
// signature. Fails with ErrInvalidToken when the string does not match the
// wire format.
func Parse(tokenStr string) (Payload, error) {
	encoded, _, err := split(tokenStr)
	if err != nil {
		return Payload{}, err
	}

	fields, err := payloadCodec.Decode(encoded)
	if err != nil {
		return Payload{}, errors.Join(ErrInvalidToken, err)
	}

	return parsePayload(fields)
}

// Verify decodes a token and checks its signature against the given secret.
// Returns the payload on success, ErrInvalidSignature when the digest does
// not match, and ErrInvalidToken when the string is malformed. Expiration is
// not checked here; that is the caller's policy decision.
func Verify(tokenStr, secret string) (Payload, error) {
	encoded, sigHex, err := split(tokenStr)
	if err != nil {
		return Payload{}, err
	}

	fields, err := payloadCodec.Decode(encoded)
	if err != nil {
		return Payload{}, errors.Join(ErrInvalidToken, err)
	}

	want, err := sign(strings.Join(fields, "&"), secret)
	if err != nil {
		return Payload{}, err
	}
	got, err := hex.DecodeString(sigHex)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: signature is not hex", ErrInvalidToken)
	}
	if !hmac.Equal(got, want) {
		return Payload{}, ErrInvalidSignature
	}

	return parsePayload(fields)
}

// sign computes the HMAC-SHA256 digest of the serialized payload keyed with
// the account secret. Deterministic given identical inputs; uniqueness is
// already guaranteed by the payload nonce.
func sign(serialized, secret string) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: account secret is required", ErrSigningFailure)
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(serialized))
	return mac.Sum(nil), nil
}

// assemble concatenates the version tag, the canonically encoded payload, and
// the lowercase hex digest into the final token string.
func assemble(fields []string, sig []byte) string {
	return TokenPrefix + payloadCodec.Encode(fields) + sigSeparator + hex.EncodeToString(sig)
}

// split separates a token string into its encoded payload and hex signature.
func split(tokenStr string) (encoded, sigHex string, err error) {
	rest, found := strings.CutPrefix(tokenStr, TokenPrefix)
	if !found {
		return "", "", fmt.Errorf("%w: missing %q version tag", ErrInvalidToken, TokenPrefix)
	}

	idx := strings.LastIndex(rest, sigSeparator)
	if idx < 0 {
		return "", "", fmt.Errorf("%w: missing signature field", ErrInvalidToken)
	}

	return rest[:idx], rest[idx+len(sigSeparator):], nil
}

// newNonce returns a fresh hex-encoded random nonce. crypto/rand is safe for
// concurrent use, which keeps Generate safe without external locking.
func newNonce() (string, error) {
	b := make([]byte, nonceSize)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
