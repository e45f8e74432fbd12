package circulationstore

import (
	"errors"
)

// VersionUint is a type alias for uint, representing the optimistic-lock version of a book's inventory row.
type VersionUint = uint

var (
	// ErrNilDatabaseConnection is returned when a nil database connection is supplied to an engine constructor.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableNameSupplied is returned when an empty table name is supplied as an option.
	ErrEmptyTableNameSupplied = errors.New("empty table name supplied")

	// ErrConcurrencyConflict is returned when a commit lost the race on the book's version, no rows were affected.
	// This error is retryable: re-load the book, re-decide, commit again.
	ErrConcurrencyConflict = errors.New("concurrency conflict, no rows were affected")

	// ErrInventoryInconsistent is returned when a return would raise the available-copy count above
	// the total-copy count. This signals a data-integrity fault upstream and is never retried.
	ErrInventoryInconsistent = errors.New("inventory inconsistent, available copies would exceed total copies")

	// ErrBookNotFound is returned when no inventory row exists for the given book id.
	ErrBookNotFound = errors.New("book not found in inventory")

	// ErrBuildingQueryFailed is returned when building a SQL statement failed.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingStoreFailed is returned when executing a read query failed.
	ErrQueryingStoreFailed = errors.New("querying store failed")

	// ErrScanningDBRowFailed is returned when scanning a database row failed.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")

	// ErrExecutingCommitFailed is returned when executing a statement inside a commit transaction failed.
	ErrExecutingCommitFailed = errors.New("executing commit statement failed")

	// ErrBeginningTxFailed is returned when opening the commit transaction failed.
	ErrBeginningTxFailed = errors.New("beginning transaction failed")

	// ErrCommittingTxFailed is returned when the final transaction commit failed.
	ErrCommittingTxFailed = errors.New("committing transaction failed")

	// ErrGettingRowsAffectedFailed is returned when the rows-affected count could not be read.
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected count failed")
)
