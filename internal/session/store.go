package session

import (
	"context"
	"errors"
	"time"

	"hiremind-api/pkg/models"
)

// ErrNotFound is returned when a session has no stored resume
var ErrNotFound = errors.New("no resume stored for session")

// ResumeRecord is the session-scoped snapshot of an uploaded resume. The raw
// text is kept alongside the parsed profile so comparisons can run without
// re-uploading the file.
type ResumeRecord struct {
	Profile    *models.UserProfile `json:"profile"`
	Filename   string              `json:"filename"`
	RawText    string              `json:"rawText,omitempty"`
	UploadedAt time.Time           `json:"uploadedAt"`
}

// Store holds at most one resume record per session. A second upload in the
// same session replaces the first.
type Store interface {
	// Get returns the stored record for the session or ErrNotFound.
	Get(ctx context.Context, sessionID string) (*ResumeRecord, error)
	// Set stores the record for the session, replacing any previous one.
	Set(ctx context.Context, sessionID string, record *ResumeRecord) error
	// Clear removes the session's record. Clearing an empty session is not
	// an error.
	Clear(ctx context.Context, sessionID string) error
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the store.
	Close() error
}
