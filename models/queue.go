package models

import "time"

// SubmissionKind tags a queued offline submission with the endpoint it
// belongs to.
type SubmissionKind string

const (
	SubmissionMeal  SubmissionKind = "meal"
	SubmissionBazar SubmissionKind = "bazar"
)

// PendingSubmission is one form submission that could not reach the server
// and was parked in the client's local queue. Payload holds the original
// request body as JSON; it is resubmitted verbatim by the flush job.
type PendingSubmission struct {
	// ID is the local queue sequence number (SQLite rowid).
	ID int64 `json:"id"`

	// Kind selects the endpoint the payload is resubmitted to.
	Kind SubmissionKind `json:"kind"`

	// Payload is the serialized request body.
	Payload []byte `json:"payload"`

	// Attempts counts how many flushes have tried this submission.
	Attempts int `json:"attempts"`

	CreatedAt time.Time `json:"created_at"`
}
