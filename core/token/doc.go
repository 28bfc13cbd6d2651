// Package token mints the short-lived signed access tokens that clients
// present when joining a real-time communication session.
//
// A token binds a session identifier, a permission role, an expiration time,
// and optional connection metadata to the issuing account via an HMAC-SHA256
// signature keyed with the account secret. The serialized payload field order
// and the final token layout are part of the wire contract with the remote
// service's verifier and must not change:
//
//	"T1==" + base64url(payload, no padding) + "&sig=" + lowercase hex digest
//
// Every token carries a fresh random nonce (16 bytes of entropy), so two
// tokens minted for the same session with identical options always differ.
//
// Token generation is pure and synchronous: no I/O, no retries, safe for
// concurrent use from any number of goroutines. All validation failures are
// surfaced to the caller as typed sentinel errors; none indicate a transient
// condition.
//
// Basic usage:
//
//	cred := token.Credential{AccountKey: 40000, Secret: "abc123"}
//	tok, err := token.Generate(cred, sessionID, token.Options{
//		Role:           token.RoleSubscriber,
//		ConnectionData: "username=Bob,userLevel=4",
//	})
//
// Parse and Verify exist for the service-side verifier contract and for test
// fixtures; the SDK itself never consumes tokens.
package token
