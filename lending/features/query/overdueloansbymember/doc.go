// Package overdueloansbymember implements the Overdue Loans By Member query use case.
//
// This feature provides a pure query operation that returns the open loans of a
// member whose claimed return date has passed. The reference time is supplied by
// the caller, so the projection stays deterministic and testable.
//
// The query reads from the loan ledger only and runs with eventual consistency,
// so it may be served by a read replica.
package overdueloansbymember
