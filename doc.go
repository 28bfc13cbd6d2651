// Package rtckit is a server-side SDK for a hosted real-time communication
// platform. It authenticates end users for sessions by minting short-lived,
// HMAC-signed access tokens, and delegates session and archive lifecycle
// operations to the platform's REST API.
//
// Token generation is pure and synchronous: it decodes and validates the
// session identifier locally, builds and signs the payload, and never touches
// the network. Lifecycle operations (session creation, archive start/stop/
// list/get/delete) go through the Session Service Gateway.
//
// # Package Organization
//
//	github.com/dmitrymomot/rtckit                 - Client facade, credential configuration
//	github.com/dmitrymomot/rtckit/core/wire       - Canonical URL-safe field encoding
//	github.com/dmitrymomot/rtckit/core/sessionid  - Session identifier codec
//	github.com/dmitrymomot/rtckit/core/token      - Token payload building and signing
//	github.com/dmitrymomot/rtckit/core/gateway    - Session service contract and types
//	github.com/dmitrymomot/rtckit/core/config     - Type-safe environment configuration
//	github.com/dmitrymomot/rtckit/integration/api - HTTP gateway implementation
//	github.com/dmitrymomot/rtckit/pkg/async       - Typed futures for non-blocking calls
//
// # Basic Usage
//
//	client, err := rtckit.New(40000, "account-secret")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err := client.CreateSession(ctx, gateway.SessionProperties{
//		MediaMode: gateway.MediaModeRouted,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	tok, err := client.GenerateToken(sess.ID, token.Options{
//		Role:           token.RoleSubscriber,
//		ConnectionData: "username=Bob,userLevel=4",
//	})
//
// Credentials can also come from the environment (RTC_ACCOUNT_KEY,
// RTC_ACCOUNT_SECRET, RTC_API_URL):
//
//	client, err := rtckit.NewFromEnv()
package rtckit
