// Package openloansbymember implements the Open Loans By Member query use case.
//
// This feature provides a pure query operation that returns the book copies a
// member currently holds, i.e. the loans that have not been closed by a return.
// It follows the Query-Project pattern without any command processing or state
// mutation.
//
// The query reads from the loan ledger only and runs with eventual consistency,
// so it may be served by a read replica.
package openloansbymember
