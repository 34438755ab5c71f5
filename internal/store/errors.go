package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUserHasDependents is returned when a user cannot be deleted because
	// posts or comments still reference it.
	ErrUserHasDependents = errors.New("user still owns posts or comments")

	// ErrPostNotFound is returned when a post identified by id (and owner,
	// for mutations) does not exist.
	ErrPostNotFound = errors.New("post was not found")

	// ErrCommentNotFound is returned when a comment identified by id (and
	// owner, for mutations) does not exist.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrReferenceNotFound is returned when an INSERT violates a foreign key,
	// i.e. the referenced owner or post vanished concurrently.
	ErrReferenceNotFound = errors.New("referenced row does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
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

	// ErrUnsupportedDriver is returned by [NewDB] for unknown driver names.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
