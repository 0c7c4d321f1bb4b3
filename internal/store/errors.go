package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a queried or targeted row does not exist.
	ErrNotFound = errors.New("record was not found")

	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")

	// ErrReferenceNotFound is returned when a write references a row that
	// does not exist (foreign key violation).
	ErrReferenceNotFound = errors.New("referenced record was not found")

	// ErrConstraintViolated is returned when a write breaks a check constraint.
	ErrConstraintViolated = errors.New("record violates a constraint")

	// ErrEmptyUpload is returned when an upload carries no content.
	ErrEmptyUpload = errors.New("upload has no content")
)

// Low-level database operation errors. These wrap driver errors when a SQL
// operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
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

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrStoringFile is returned when the document store cannot write or
	// read file content.
	ErrStoringFile = errors.New("failed to access document file")
)
