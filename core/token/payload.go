package token

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/rtckit/core/wire"
)

// Payload field keys in wire order. Ordering is part of the contract with the
// remote service's verifier, not an implementation detail; never reorder.
const (
	keyAccountKey     = "account_key"
	keySessionID      = "session_id"
	keyCreateTime     = "create_time"
	keyExpireTime     = "expire_time"
	keyRole           = "role"
	keyNonce          = "nonce"
	keyConnectionData = "connection_data"
	keyLayoutClasses  = "initial_layout_class_list"
	keySigVersion     = "sig_version"
)

// payloadCodec encodes the ordered key=value payload fields. The separator is
// fixed by the wire format.
var payloadCodec = wire.NewCodec("&")

// Payload is the fully populated token payload. Ephemeral: built once per
// Generate call, serialized, signed, and discarded. Parse reconstructs it
// from a token string for verification and fixtures.
type Payload struct {
	AccountKey             int
	SessionID              string
	CreateTime             time.Time
	ExpireTime             time.Time
	Role                   Role
	Nonce                  string
	ConnectionData         string
	InitialLayoutClassList []string
	SignatureVersion       int
}

// serialize renders the payload as ordered key=value fields. Values that may
// contain reserved characters are query-escaped so the field separator never
// appears inside a value.
func (p Payload) serialize() []string {
	return []string{
		keyAccountKey + "=" + strconv.Itoa(p.AccountKey),
		keySessionID + "=" + url.QueryEscape(p.SessionID),
		keyCreateTime + "=" + strconv.FormatInt(p.CreateTime.Unix(), 10),
		keyExpireTime + "=" + strconv.FormatInt(p.ExpireTime.Unix(), 10),
		keyRole + "=" + string(p.Role),
		keyNonce + "=" + p.Nonce,
		keyConnectionData + "=" + url.QueryEscape(p.ConnectionData),
		keyLayoutClasses + "=" + url.QueryEscape(strings.Join(p.InitialLayoutClassList, " ")),
		keySigVersion + "=" + strconv.Itoa(p.SignatureVersion),
	}
}

// parsePayload rebuilds a Payload from decoded wire fields.
func parsePayload(fields []string) (Payload, error) {
	var p Payload
	seen := make(map[string]bool, len(fields))

	for _, field := range fields {
		key, value, found := strings.Cut(field, "=")
		if !found {
			return Payload{}, fmt.Errorf("%w: field %q has no value", ErrInvalidToken, field)
		}
		seen[key] = true

		switch key {
		case keyAccountKey:
			n, err := strconv.Atoi(value)
			if err != nil {
				return Payload{}, fmt.Errorf("%w: account key is not numeric", ErrInvalidToken)
			}
			p.AccountKey = n
		case keySessionID:
			s, err := url.QueryUnescape(value)
			if err != nil {
				return Payload{}, fmt.Errorf("%w: session id: %s", ErrInvalidToken, err)
			}
			p.SessionID = s
		case keyCreateTime:
			sec, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return Payload{}, fmt.Errorf("%w: create time is not numeric", ErrInvalidToken)
			}
			p.CreateTime = time.Unix(sec, 0).UTC()
		case keyExpireTime:
			sec, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return Payload{}, fmt.Errorf("%w: expire time is not numeric", ErrInvalidToken)
			}
			p.ExpireTime = time.Unix(sec, 0).UTC()
		case keyRole:
			p.Role = Role(value)
		case keyNonce:
			p.Nonce = value
		case keyConnectionData:
			s, err := url.QueryUnescape(value)
			if err != nil {
				return Payload{}, fmt.Errorf("%w: connection data: %s", ErrInvalidToken, err)
			}
			p.ConnectionData = s
		case keyLayoutClasses:
			s, err := url.QueryUnescape(value)
			if err != nil {
				return Payload{}, fmt.Errorf("%w: layout class list: %s", ErrInvalidToken, err)
			}
			if s != "" {
				p.InitialLayoutClassList = strings.Split(s, " ")
			}
		case keySigVersion:
			n, err := strconv.Atoi(value)
			if err != nil {
				return Payload{}, fmt.Errorf("%w: signature version is not numeric", ErrInvalidToken)
			}
			p.SignatureVersion = n
		}
		// Unknown keys from future format versions are ignored.
	}

	for _, required := range []string{keyAccountKey, keySessionID, keyRole, keyNonce} {
		if !seen[required] {
			return Payload{}, fmt.Errorf("%w: missing %s field", ErrInvalidToken, required)
		}
	}

	return p, nil
}
