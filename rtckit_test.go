package rtckit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rtckit"
	"github.com/dmitrymomot/rtckit/core/gateway"
	"github.com/dmitrymomot/rtckit/core/sessionid"
	"github.com/dmitrymomot/rtckit/core/token"
)

const (
	testAccountKey = 40000
	testSecret     = "abc123"
)

// stubGateway is a canned-response gateway.Gateway for facade tests.
type stubGateway struct {
	session    gateway.Session
	archive    gateway.Archive
	list       gateway.ArchiveList
	err        error
	lastCall   string
	lastParams any
}

func (s *stubGateway) CreateSession(ctx context.Context, props gateway.SessionProperties) (gateway.Session, error) {
	s.lastCall, s.lastParams = "CreateSession", props
	return s.session, s.err
}

func (s *stubGateway) GetArchive(ctx context.Context, archiveID string) (gateway.Archive, error) {
	s.lastCall, s.lastParams = "GetArchive", archiveID
	return s.archive, s.err
}

func (s *stubGateway) ListArchives(ctx context.Context, filter gateway.ArchiveListFilter) (gateway.ArchiveList, error) {
	s.lastCall, s.lastParams = "ListArchives", filter
	return s.list, s.err
}

func (s *stubGateway) StartArchive(ctx context.Context, sessionID string, opts gateway.ArchiveOptions) (gateway.Archive, error) {
	s.lastCall, s.lastParams = "StartArchive", sessionID
	return s.archive, s.err
}

func (s *stubGateway) StopArchive(ctx context.Context, archiveID string) (gateway.Archive, error) {
	s.lastCall, s.lastParams = "StopArchive", archiveID
	return s.archive, s.err
}

func (s *stubGateway) DeleteArchive(ctx context.Context, archiveID string) error {
	s.lastCall, s.lastParams = "DeleteArchive", archiveID
	return s.err
}

func newSessionID(accountKey int) string {
	return sessionid.Encode(sessionid.Identifier{
		FormatVersion: 1,
		AccountKey:    accountKey,
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
		Nonce:         "0.14788293252497466",
	})
}

func newTestClient(t *testing.T, gw gateway.Gateway) *rtckit.Client {
	t.Helper()
	client, err := rtckit.New(testAccountKey, testSecret, rtckit.WithGateway(gw))
	require.NoError(t, err)
	return client
}

func TestNew_Validation(t *testing.T) {
	_, err := rtckit.New(0, testSecret)
	assert.ErrorIs(t, err, rtckit.ErrInvalidCredential)

	_, err = rtckit.New(testAccountKey, "")
	assert.ErrorIs(t, err, rtckit.ErrInvalidCredential)

	_, err = rtckit.New(testAccountKey, "   \t ")
	assert.ErrorIs(t, err, rtckit.ErrInvalidCredential)
}

func TestNew_TrimsSecret(t *testing.T) {
	// Secrets pasted from dashboards often carry whitespace; it is trimmed
	// once at configuration time, so both clients sign identically.
	trimmed, err := rtckit.New(testAccountKey, testSecret, rtckit.WithGateway(&stubGateway{}))
	require.NoError(t, err)
	padded, err := rtckit.New(testAccountKey, "  "+testSecret+"\n", rtckit.WithGateway(&stubGateway{}))
	require.NoError(t, err)

	sessionID := newSessionID(testAccountKey)
	tok, err := padded.GenerateToken(sessionID, token.Options{})
	require.NoError(t, err)

	_, err = token.Verify(tok, testSecret)
	require.NoError(t, err, "token from padded secret must verify under the trimmed secret")

	tok2, err := trimmed.GenerateToken(sessionID, token.Options{})
	require.NoError(t, err)
	_, err = token.Verify(tok2, testSecret)
	require.NoError(t, err)
}

func TestGenerateToken_Defaults(t *testing.T) {
	client := newTestClient(t, &stubGateway{})
	sessionID := newSessionID(testAccountKey)

	tok, err := client.GenerateToken(sessionID, token.Options{})
	require.NoError(t, err)

	payload, err := token.Verify(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, token.RolePublisher, payload.Role)
	assert.Equal(t, sessionID, payload.SessionID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), payload.ExpireTime, 5*time.Second)
}

func TestGenerateToken_AccountMismatch(t *testing.T) {
	client := newTestClient(t, &stubGateway{})

	_, err := client.GenerateToken(newSessionID(99999), token.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrAccountMismatch)
}

func TestGenerateToken_EmptySessionID(t *testing.T) {
	client := newTestClient(t, &stubGateway{})

	_, err := client.GenerateToken("", token.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, sessionid.ErrInvalidSessionID)
}

func TestLifecycleDelegation(t *testing.T) {
	stub := &stubGateway{
		session: gateway.Session{ID: "session-1"},
		archive: gateway.Archive{ID: "archive-1", Status: gateway.ArchiveStatusStarted},
		list:    gateway.ArchiveList{Count: 2},
	}
	client := newTestClient(t, stub)
	ctx := context.Background()

	sess, err := client.CreateSession(ctx, gateway.SessionProperties{MediaMode: gateway.MediaModeRouted})
	require.NoError(t, err)
	assert.Equal(t, "session-1", sess.ID)
	assert.Equal(t, "CreateSession", stub.lastCall)

	archive, err := client.StartArchive(ctx, "session-1", gateway.ArchiveOptions{})
	require.NoError(t, err)
	assert.Equal(t, "archive-1", archive.ID)
	assert.Equal(t, "session-1", stub.lastParams)

	_, err = client.StopArchive(ctx, "archive-1")
	require.NoError(t, err)
	assert.Equal(t, "StopArchive", stub.lastCall)

	_, err = client.GetArchive(ctx, "archive-1")
	require.NoError(t, err)

	list, err := client.ListArchives(ctx, gateway.ArchiveListFilter{Count: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Count)

	require.NoError(t, client.DeleteArchive(ctx, "archive-1"))
	assert.Equal(t, "DeleteArchive", stub.lastCall)
}

func TestLifecycleAsync(t *testing.T) {
	stub := &stubGateway{
		session: gateway.Session{ID: "session-1"},
		archive: gateway.Archive{ID: "archive-1"},
	}
	client := newTestClient(t, stub)
	ctx := context.Background()

	sess, err := client.CreateSessionAsync(ctx, gateway.SessionProperties{}).Await()
	require.NoError(t, err)
	assert.Equal(t, "session-1", sess.ID)

	archive, err := client.StartArchiveAsync(ctx, "session-1", gateway.ArchiveOptions{}).Await()
	require.NoError(t, err)
	assert.Equal(t, "archive-1", archive.ID)

	_, err = client.DeleteArchiveAsync(ctx, "archive-1").Await()
	require.NoError(t, err)
}

func TestGatewayErrorsPropagate(t *testing.T) {
	stub := &stubGateway{err: gateway.ErrRequestFailed}
	client := newTestClient(t, stub)

	_, err := client.CreateSession(context.Background(), gateway.SessionProperties{})
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrRequestFailed)
	// Remote failures are never disguised as local validation errors.
	assert.NotErrorIs(t, err, sessionid.ErrInvalidSessionID)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("RTC_ACCOUNT_KEY", "40000")
	t.Setenv("RTC_ACCOUNT_SECRET", testSecret)
	t.Setenv("RTC_API_URL", "https://api.example.com")

	client, err := rtckit.NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, testAccountKey, client.AccountKey())

	// Token generation is local, so no reachable endpoint is needed.
	tok, err := client.GenerateToken(newSessionID(testAccountKey), token.Options{})
	require.NoError(t, err)
	_, err = token.Verify(tok, testSecret)
	require.NoError(t, err)
}
