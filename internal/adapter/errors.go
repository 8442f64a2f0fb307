package adapter

import "errors"

// Sentinel errors returned by the adapter after mapping server responses.
// Callers match them with [errors.Is] to decide how to react: a 401 means
// the session is no longer valid, a network failure means the submission
// may be queued for a later retry.
var (
	ErrBadRequest          = errors.New("request rejected by server")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found on server")
	ErrConflict            = errors.New("conflict on server")
	ErrInternalServerError = errors.New("internal server error")

	// ErrServerUnavailable covers transport-level failures: connection
	// refused, DNS errors, timeouts. The request may have never reached
	// the server, so it is safe to retry.
	ErrServerUnavailable = errors.New("server unavailable")
)
