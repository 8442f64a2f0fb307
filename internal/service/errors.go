package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that login failures do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled is returned when the credentials are correct but
	// the account has been deactivated by an admin.
	ErrAccountDisabled = errors.New("account is disabled")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrRoleNotPermitted is returned when the acting user's role does not
	// allow the requested role assignment.
	ErrRoleNotPermitted = errors.New("acting role may not assign the requested role")
)

// Client-side sentinels.
var (
	// ErrSubmissionQueued tells the caller the server was unreachable and
	// the submission was parked in the offline queue. The flush job will
	// resubmit it; the screen should present this as a soft success.
	ErrSubmissionQueued = errors.New("server unreachable, submission queued locally")

	// ErrOperationForbidden is returned when the server rejects an
	// operation with 403: the session is valid but the role is not enough.
	ErrOperationForbidden = errors.New("operation not permitted for this role")
)
