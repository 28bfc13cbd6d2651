package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rtckit/core/gateway"
	"github.com/dmitrymomot/rtckit/core/sessionid"
)

// Client implements gateway.Gateway over the session service's REST API.
// Safe for concurrent use; in-flight requests proceed independently.
type Client struct {
	cfg           Config
	accountKey    int
	accountSecret string
	http          *http.Client
	log           *slog.Logger
}

// Option is a functional option for configuring the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client, e.g. for proxy or TLS settings.
// The Config timeout is not applied on top of a custom client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithLogger sets a logger for debug-level request logging. By default the
// client is silent.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a session service client for the given account credential.
func New(accountKey int, accountSecret string, cfg Config, opts ...Option) (*Client, error) {
	if accountKey <= 0 {
		return nil, fmt.Errorf("%w: account key is required", gateway.ErrInvalidConfig)
	}
	if accountSecret == "" {
		return nil, fmt.Errorf("%w: account secret is required", gateway.ErrInvalidConfig)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", gateway.ErrInvalidConfig)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: base URL: %s", gateway.ErrInvalidConfig, err)
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	c := &Client{
		cfg:           cfg,
		accountKey:    accountKey,
		accountSecret: accountSecret,
		http:          &http.Client{Timeout: cfg.Timeout},
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateSession allocates a new session. The service answers with an array of
// created sessions that must contain exactly one element.
func (c *Client) CreateSession(ctx context.Context, props gateway.SessionProperties) (gateway.Session, error) {
	form := url.Values{}
	if props.MediaMode != "" {
		form.Set("media_mode", string(props.MediaMode))
	}
	if props.ArchiveMode != "" {
		form.Set("archive_mode", string(props.ArchiveMode))
	}
	if props.Location != "" {
		form.Set("location", props.Location)
	}

	var sessions []gateway.Session
	if err := c.do(ctx, http.MethodPost, "/session/create", form, &sessions); err != nil {
		return gateway.Session{}, err
	}
	if len(sessions) != 1 {
		return gateway.Session{}, fmt.Errorf("%w: expected one created session, got %d",
			gateway.ErrUnexpectedResponse, len(sessions))
	}
	return sessions[0], nil
}

// GetArchive fetches one archive by ID.
func (c *Client) GetArchive(ctx context.Context, archiveID string) (gateway.Archive, error) {
	if err := validateArchiveID(archiveID); err != nil {
		return gateway.Archive{}, err
	}

	var archive gateway.Archive
	if err := c.do(ctx, http.MethodGet, c.archivePath(archiveID), nil, &archive); err != nil {
		return gateway.Archive{}, err
	}
	return archive, nil
}

// ListArchives returns a page of archives matching the filter.
func (c *Client) ListArchives(ctx context.Context, filter gateway.ArchiveListFilter) (gateway.ArchiveList, error) {
	query := url.Values{}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}
	if filter.Count > 0 {
		query.Set("count", strconv.Itoa(filter.Count))
	}
	if filter.SessionID != "" {
		query.Set("session_id", filter.SessionID)
	}

	path := c.archivePath("")
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var list gateway.ArchiveList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return gateway.ArchiveList{}, err
	}
	return list, nil
}

// StartArchive begins recording the given session.
func (c *Client) StartArchive(ctx context.Context, sessionID string, opts gateway.ArchiveOptions) (gateway.Archive, error) {
	if sessionID == "" {
		return gateway.Archive{}, fmt.Errorf("%w: empty session id", sessionid.ErrInvalidSessionID)
	}

	body := map[string]any{
		"session_id": sessionID,
		"has_audio":  !opts.DisableAudio,
		"has_video":  !opts.DisableVideo,
	}
	if opts.Name != "" {
		body["name"] = opts.Name
	}

	var archive gateway.Archive
	if err := c.do(ctx, http.MethodPost, c.archivePath(""), body, &archive); err != nil {
		return gateway.Archive{}, err
	}
	return archive, nil
}

// StopArchive stops a recording in progress.
func (c *Client) StopArchive(ctx context.Context, archiveID string) (gateway.Archive, error) {
	if err := validateArchiveID(archiveID); err != nil {
		return gateway.Archive{}, err
	}

	var archive gateway.Archive
	if err := c.do(ctx, http.MethodPost, c.archivePath(archiveID)+"/stop", nil, &archive); err != nil {
		return gateway.Archive{}, err
	}
	return archive, nil
}

// DeleteArchive removes an available or uploaded archive.
func (c *Client) DeleteArchive(ctx context.Context, archiveID string) error {
	if err := validateArchiveID(archiveID); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, c.archivePath(archiveID), nil, nil)
}

// archivePath builds the archive collection or item path for the account.
func (c *Client) archivePath(archiveID string) string {
	path := fmt.Sprintf("/v2/account/%d/archive", c.accountKey)
	if archiveID != "" {
		path += "/" + archiveID
	}
	return path
}

// do executes one authenticated request and decodes a JSON response into out
// when out is non-nil. body may be url.Values (form-encoded) or any JSON
// marshalable value.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var (
		reader      io.Reader
		contentType string
	)
	switch b := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(b.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return errors.Join(gateway.ErrRequestFailed, err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return errors.Join(gateway.ErrRequestFailed, err)
	}

	authToken, err := c.newAuthToken()
	if err != nil {
		return err
	}
	req.Header.Set(authHeader, authToken)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.log.DebugContext(ctx, "session service request",
		slog.String("method", method),
		slog.String("path", path),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(gateway.ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", gateway.ErrNotFound, method, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: %s %s returned %d", gateway.ErrRequestFailed, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(gateway.ErrUnexpectedResponse, err)
	}
	return nil
}

// validateArchiveID rejects empty or non-UUID archive identifiers before any
// request is issued.
func validateArchiveID(archiveID string) error {
	if archiveID == "" {
		return fmt.Errorf("%w: empty archive id", gateway.ErrInvalidArchiveID)
	}
	if _, err := uuid.Parse(archiveID); err != nil {
		return fmt.Errorf("%w: %q is not a UUID", gateway.ErrInvalidArchiveID, archiveID)
	}
	return nil
}
