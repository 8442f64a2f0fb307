package store

import (
	"context"

	"github.com/bachelormess/mess-manager/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository persists the client's single session record in the
// local SQLite database. There is at most one record at a time; absence is
// the normal anonymous state.
type LocalSessionRepository interface {
	// SaveSession overwrites the stored session record.
	SaveSession(ctx context.Context, record models.SessionRecord) error

	// LoadSession returns the stored record, or ErrLocalSessionNotFound
	// when no session is persisted.
	LoadSession(ctx context.Context) (models.SessionRecord, error)

	// ClearSession removes the stored record. Clearing an absent record
	// is not an error.
	ClearSession(ctx context.Context) error
}

// OfflineQueueRepository is the durable queue of form submissions that could
// not reach the server.
type OfflineQueueRepository interface {
	// Enqueue appends a submission to the queue.
	Enqueue(ctx context.Context, kind models.SubmissionKind, payload []byte) error

	// Pending returns all queued submissions in insertion order.
	Pending(ctx context.Context) ([]models.PendingSubmission, error)

	// MarkAttempt increments the attempt counter of a submission.
	MarkAttempt(ctx context.Context, id int64) error

	// Remove deletes a submission after a successful resubmit.
	Remove(ctx context.Context, id int64) error
}
