package store

import "errors"

// Sentinel errors returned by repository and session store methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrEmailAlreadyExists is returned when a new user is registered with an
	// email that already belongs to another account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by id or email matches no
	// user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProductNotFound is returned when a product lookup or delete targets
	// a product that does not exist or does not belong to the user.
	ErrProductNotFound = errors.New("product was not found")

	// ErrSessionNotFound is returned when a session id is unknown to the
	// store or the stored record has expired.
	ErrSessionNotFound = errors.New("session was not found")
)

// Low-level storage operation errors. These are returned (or wrapped) when a
// storage-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with the
	// query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingSession is returned when a session cannot be serialized
	// for storage.
	ErrEncodingSession = errors.New("failed to encode session")

	// ErrDecodingSession is returned when a stored session record cannot be
	// deserialized.
	ErrDecodingSession = errors.New("failed to decode session")
)
