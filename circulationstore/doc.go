// Package circulationstore defines the storage contracts shared by all
// implementations of the library circulation store: the record DTOs for books
// (inventory), loans (ledger) and audit entries, the sentinel errors of the
// storage layer, dependency-free observability interfaces, and read-consistency
// context helpers.
//
// The package is deliberately free of database dependencies so that client code
// (command and query handlers) only couples to scalars and small DTOs. Concrete
// engines live in sub-packages, currently postgresengine for PostgreSQL.
//
// The central contract is the atomic commit protocol: a successful borrow must
// decrement a book's available-copy count and create the open loan as one unit,
// a successful return must close the loan and increment the count as one unit.
// Engines signal lost races on the per-book version with ErrConcurrencyConflict
// so that callers can re-read, re-decide and retry.
package circulationstore
