package rtckit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/rtckit/core/gateway"
	"github.com/dmitrymomot/rtckit/core/token"
	"github.com/dmitrymomot/rtckit/integration/api"
	"github.com/dmitrymomot/rtckit/pkg/async"
)

// DefaultAPIURL is the hosted platform endpoint used when no override is
// configured.
const DefaultAPIURL = "https://api.rtckit.io"

// Client is the SDK entry point. It holds the immutable account credential,
// mints access tokens locally, and delegates lifecycle operations to the
// session service gateway. Safe for concurrent use from any number of
// goroutines.
type Client struct {
	cred token.Credential
	gw   gateway.Gateway
}

type options struct {
	apiConfig  api.Config
	httpClient *http.Client
	logger     *slog.Logger
	gw         gateway.Gateway
}

// Option is a functional option for configuring the client.
type Option func(*options)

// WithAPIURL overrides the session service endpoint.
func WithAPIURL(baseURL string) Option {
	return func(o *options) {
		o.apiConfig.BaseURL = baseURL
	}
}

// WithAPIConfig replaces the whole gateway endpoint configuration.
func WithAPIConfig(cfg api.Config) Option {
	return func(o *options) {
		o.apiConfig = cfg
	}
}

// WithHTTPClient sets a custom HTTP client for gateway requests, e.g. for
// proxy or TLS transport options.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithLogger enables debug-level request logging in the gateway. Token
// generation never logs regardless of this setting.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithGateway replaces the default HTTP gateway entirely. Useful for tests
// and for callers that wrap the gateway with retry policy.
func WithGateway(gw gateway.Gateway) Option {
	return func(o *options) {
		o.gw = gw
	}
}

// New creates a client for the given account credential. The secret is
// trimmed of surrounding whitespace once here; the credential is immutable
// afterwards.
func New(accountKey int, accountSecret string, opts ...Option) (*Client, error) {
	secret := strings.TrimSpace(accountSecret)
	if accountKey <= 0 {
		return nil, fmt.Errorf("%w: account key must be positive", ErrInvalidCredential)
	}
	if secret == "" {
		return nil, fmt.Errorf("%w: account secret is required", ErrInvalidCredential)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.gw == nil {
		if o.apiConfig.BaseURL == "" {
			o.apiConfig.BaseURL = DefaultAPIURL
		}
		var apiOpts []api.Option
		if o.httpClient != nil {
			apiOpts = append(apiOpts, api.WithHTTPClient(o.httpClient))
		}
		if o.logger != nil {
			apiOpts = append(apiOpts, api.WithLogger(o.logger))
		}
		gw, err := api.New(accountKey, secret, o.apiConfig, apiOpts...)
		if err != nil {
			return nil, err
		}
		o.gw = gw
	}

	return &Client{
		cred: token.Credential{AccountKey: accountKey, Secret: secret},
		gw:   o.gw,
	}, nil
}

// AccountKey returns the account key the client was configured with.
func (c *Client) AccountKey() int {
	return c.cred.AccountKey
}

// GenerateToken mints a signed access token for the given session. The
// session identifier must have been issued for this client's account;
// otherwise generation fails with token.ErrAccountMismatch. The operation is
// synchronous and performs no network access, so there is nothing to retry
// or cancel.
func (c *Client) GenerateToken(sessionID string, opts token.Options) (string, error) {
	return token.Generate(c.cred, sessionID, opts)
}

// CreateSession allocates a new session on the platform.
func (c *Client) CreateSession(ctx context.Context, props gateway.SessionProperties) (gateway.Session, error) {
	return c.gw.CreateSession(ctx, props)
}

// GetArchive fetches one archive by ID.
func (c *Client) GetArchive(ctx context.Context, archiveID string) (gateway.Archive, error) {
	return c.gw.GetArchive(ctx, archiveID)
}

// ListArchives returns a page of the account's archives.
func (c *Client) ListArchives(ctx context.Context, filter gateway.ArchiveListFilter) (gateway.ArchiveList, error) {
	return c.gw.ListArchives(ctx, filter)
}

// StartArchive begins recording the given session. Only sessions using the
// routed media mode can be archived.
func (c *Client) StartArchive(ctx context.Context, sessionID string, opts gateway.ArchiveOptions) (gateway.Archive, error) {
	return c.gw.StartArchive(ctx, sessionID, opts)
}

// StopArchive stops a recording in progress.
func (c *Client) StopArchive(ctx context.Context, archiveID string) (gateway.Archive, error) {
	return c.gw.StopArchive(ctx, archiveID)
}

// DeleteArchive removes an available or uploaded archive.
func (c *Client) DeleteArchive(ctx context.Context, archiveID string) error {
	return c.gw.DeleteArchive(ctx, archiveID)
}

// CreateSessionAsync is CreateSession returning a future instead of blocking.
// Multiple in-flight calls proceed independently with no ordering guarantee.
func (c *Client) CreateSessionAsync(ctx context.Context, props gateway.SessionProperties) *async.Future[gateway.Session] {
	return async.Async(ctx, func(ctx context.Context) (gateway.Session, error) {
		return c.gw.CreateSession(ctx, props)
	})
}

// GetArchiveAsync is GetArchive returning a future instead of blocking.
func (c *Client) GetArchiveAsync(ctx context.Context, archiveID string) *async.Future[gateway.Archive] {
	return async.Async(ctx, func(ctx context.Context) (gateway.Archive, error) {
		return c.gw.GetArchive(ctx, archiveID)
	})
}

// ListArchivesAsync is ListArchives returning a future instead of blocking.
func (c *Client) ListArchivesAsync(ctx context.Context, filter gateway.ArchiveListFilter) *async.Future[gateway.ArchiveList] {
	return async.Async(ctx, func(ctx context.Context) (gateway.ArchiveList, error) {
		return c.gw.ListArchives(ctx, filter)
	})
}

// StartArchiveAsync is StartArchive returning a future instead of blocking.
func (c *Client) StartArchiveAsync(ctx context.Context, sessionID string, opts gateway.ArchiveOptions) *async.Future[gateway.Archive] {
	return async.Async(ctx, func(ctx context.Context) (gateway.Archive, error) {
		return c.gw.StartArchive(ctx, sessionID, opts)
	})
}

// StopArchiveAsync is StopArchive returning a future instead of blocking.
func (c *Client) StopArchiveAsync(ctx context.Context, archiveID string) *async.Future[gateway.Archive] {
	return async.Async(ctx, func(ctx context.Context) (gateway.Archive, error) {
		return c.gw.StopArchive(ctx, archiveID)
	})
}

// DeleteArchiveAsync is DeleteArchive returning a future instead of blocking.
func (c *Client) DeleteArchiveAsync(ctx context.Context, archiveID string) *async.Future[struct{}] {
	return async.Async(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.gw.DeleteArchive(ctx, archiveID)
	})
}
