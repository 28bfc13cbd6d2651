package gateway

import (
	"context"
	"time"
)

// MediaMode controls how session streams travel between clients.
type MediaMode string

const (
	// MediaModeRelayed attempts direct peer connections, falling back to TURN
	// relay when clients cannot reach each other. Default.
	MediaModeRelayed MediaMode = "relayed"
	// MediaModeRouted sends all streams through the platform's media router.
	// Required for archiving.
	MediaModeRouted MediaMode = "routed"
)

// ArchiveMode controls whether a session is archived automatically.
type ArchiveMode string

const (
	// ArchiveModeManual records only when an archive is explicitly started.
	// Default.
	ArchiveModeManual ArchiveMode = "manual"
	// ArchiveModeAlways records the session for its entire duration.
	ArchiveModeAlways ArchiveMode = "always"
)

// SessionProperties defines options for creating a session. The zero value
// requests a relayed, manually archived session with no location hint.
type SessionProperties struct {
	MediaMode   MediaMode
	ArchiveMode ArchiveMode

	// Location hints which region's media servers should host the session.
	// An IP address; the service picks the closest infrastructure.
	Location string
}

// Session describes a session created by the remote service. The ID is the
// opaque session identifier clients connect with; the SDK decodes it via
// core/sessionid but never fabricates one.
type Session struct {
	ID             string    `json:"session_id"`
	CreatedAt      time.Time `json:"created_at"`
	MediaServerURL string    `json:"media_server_url,omitempty"`
}

// ArchiveStatus is the lifecycle state of a recording reported by the service.
type ArchiveStatus string

const (
	ArchiveStatusStarted   ArchiveStatus = "started"
	ArchiveStatusStopped   ArchiveStatus = "stopped"
	ArchiveStatusAvailable ArchiveStatus = "available"
	ArchiveStatusUploaded  ArchiveStatus = "uploaded"
	ArchiveStatusExpired   ArchiveStatus = "expired"
	ArchiveStatusFailed    ArchiveStatus = "failed"
)

// Archive describes a session recording.
type Archive struct {
	ID        string        `json:"id"`
	SessionID string        `json:"session_id"`
	Status    ArchiveStatus `json:"status"`
	Name      string        `json:"name,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	Duration  int64         `json:"duration"` // seconds
	Size      int64         `json:"size"`     // bytes
	URL       string        `json:"url,omitempty"`
	HasAudio  bool          `json:"has_audio"`
	HasVideo  bool          `json:"has_video"`
	Reason    string        `json:"reason,omitempty"`
}

// ArchiveList is a page of archives.
type ArchiveList struct {
	Count int       `json:"count"`
	Items []Archive `json:"items"`
}

// ArchiveOptions defines options for starting an archive. The zero value
// records an unnamed archive with both audio and video.
type ArchiveOptions struct {
	Name string

	// DisableAudio and DisableVideo opt streams out of the recording. Both
	// false by default so the zero value records everything.
	DisableAudio bool
	DisableVideo bool
}

// ArchiveListFilter narrows a ListArchives call. Zero Count means the service
// default page size; SessionID restricts results to one session.
type ArchiveListFilter struct {
	Offset    int
	Count     int
	SessionID string
}

// Gateway is the remote session service collaborator. Implementations issue
// the network calls the SDK facade delegates to and classify failures using
// this package's sentinel errors. Retry and backoff policy, if any, lives
// behind this interface and must never surface as a validation error.
type Gateway interface {
	// CreateSession allocates a new session and returns its descriptor.
	CreateSession(ctx context.Context, props SessionProperties) (Session, error)
	// GetArchive fetches one archive by ID.
	GetArchive(ctx context.Context, archiveID string) (Archive, error)
	// ListArchives returns a page of archives matching the filter.
	ListArchives(ctx context.Context, filter ArchiveListFilter) (ArchiveList, error)
	// StartArchive begins recording the given session.
	StartArchive(ctx context.Context, sessionID string, opts ArchiveOptions) (Archive, error)
	// StopArchive stops a recording in progress.
	StopArchive(ctx context.Context, archiveID string) (Archive, error)
	// DeleteArchive removes an available or uploaded archive.
	DeleteArchive(ctx context.Context, archiveID string) error
}
