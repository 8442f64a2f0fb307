package service

import (
	"errors"

	"github.com/bachelormess/mess-manager/internal/adapter"
)

// mapAdapterError translates the adapter's transport-level error into the
// business error the screens react to. Operation-specific meanings of a
// status (a login 401 means bad credentials, a register 409 means a taken
// email) are handled at the call site before this fallback runs.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrOperationForbidden
	}

	return err
}

// mapNotFound substitutes the entity-specific sentinel for a 404 so callers
// can match with errors.Is the same way they do against the server-side
// repositories.
func mapNotFound(err, notFound error) error {
	if errors.Is(err, adapter.ErrNotFound) {
		return notFound
	}
	return mapAdapterError(err)
}
