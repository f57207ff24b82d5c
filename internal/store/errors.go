package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user was not found")

	// ErrProfileNotFound is returned when the user has no profile yet.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrProfileAlreadyExists is returned when inserting a second profile for
	// the same user violates the unique user_id constraint.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrPrimaryNextOfKinExists is returned when the partial unique index on
	// primary next of kin rejects an insert.
	ErrPrimaryNextOfKinExists = errors.New("primary next of kin already exists")

	// ErrPassportNumberRequired is returned when a write would leave a
	// passport profile without a passport number.
	ErrPassportNumberRequired = errors.New("passport number is required for passport identification")

	// ErrUnknownImageColumn is returned when an image type has no URL column.
	ErrUnknownImageColumn = errors.New("unknown image column")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
