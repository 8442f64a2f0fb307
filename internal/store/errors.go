package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyRegistered is returned when an attempt to register a new
	// user fails because the email is already present. The unique index on
	// lower(email) is authoritative; this error is the mapped form of the
	// resulting constraint violation.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrMealAlreadySubmitted is returned when a member submits a second meal
	// record for a day that already has one; (user_id, meal_date) is unique.
	ErrMealAlreadySubmitted = errors.New("meal already submitted for this date")

	// ErrMealNotFound is returned when a meal lookup or status update targets
	// a record that does not exist.
	ErrMealNotFound = errors.New("meal record was not found")

	// ErrBazarEntryNotFound is returned when a bazar lookup or status update
	// targets an entry that does not exist.
	ErrBazarEntryNotFound = errors.New("bazar entry was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
