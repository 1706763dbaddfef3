package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCardNotFound is returned when a query, update or delete targets a
	// card id that does not exist.
	ErrCardNotFound = errors.New("card was not found")

	// ErrCardNotCreated is returned when an INSERT of a card fails.
	ErrCardNotCreated = errors.New("card was not created")

	// ErrCardNotUpdated is returned when an UPDATE of an existing card fails.
	ErrCardNotUpdated = errors.New("card was not updated")

	// ErrCardNotDeleted is returned when a DELETE of an existing card fails.
	ErrCardNotDeleted = errors.New("card was not deleted")

	// ErrSettingNotFound is returned when no settings record is stored under
	// the requested key.
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrFileTooLarge is returned by [ExportFileStorage.Load] when the file
	// exceeds the caller's size limit.
	ErrFileTooLarge = errors.New("file is too large")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan card row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan card rows")
)
