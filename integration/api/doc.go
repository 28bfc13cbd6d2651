// Package api provides the HTTP implementation of the gateway.Gateway
// interface against the hosted session service's REST API.
//
// Sessions are created with a form-encoded POST; archive operations use JSON
// endpoints under /v2/account/{accountKey}/archive. Every request carries a
// short-lived HS256 auth token minted from the account credential, so the
// account secret itself never travels over the wire.
//
// Remote failures are classified onto the core/gateway error taxonomy:
// transport errors and error statuses become gateway.ErrRequestFailed (or
// gateway.ErrNotFound for 404), undecodable success bodies become
// gateway.ErrUnexpectedResponse. The client performs no retries; callers that
// want retry policy wrap the Gateway interface.
//
// Basic usage:
//
//	gw, err := api.New(40000, "secret", api.Config{
//		BaseURL: "https://api.rtckit.io",
//		Timeout: 30 * time.Second,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	sess, err := gw.CreateSession(ctx, gateway.SessionProperties{
//		MediaMode: gateway.MediaModeRouted,
//	})
package api
