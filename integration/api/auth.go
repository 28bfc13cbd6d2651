package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/rtckit/core/gateway"
)

// authHeader carries the per-request auth token.
const authHeader = "X-Auth-Token"

// authTokenTTL bounds how long a captured request stays replayable.
const authTokenTTL = 3 * time.Minute

// authClaims is the auth token payload the service expects: the account key
// as issuer, an "account" issuer type, and a unique jti per request.
type authClaims struct {
	IssuerType string `json:"ist"`
	jwt.RegisteredClaims
}

// newAuthToken mints a short-lived HS256 token for one request.
func (c *Client) newAuthToken() (string, error) {
	now := time.Now()
	claims := authClaims{
		IssuerType: "account",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    strconv.Itoa(c.accountKey),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.accountSecret))
	if err != nil {
		return "", errors.Join(gateway.ErrRequestFailed, err)
	}
	return signed, nil
}
