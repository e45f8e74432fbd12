// Package loansbymember implements the Loans By Member query use case.
//
// This feature provides a pure query operation that returns the complete loan
// history of a member, open and closed loans alike, ordered by borrow date.
// It follows the Query-Project pattern without any command processing or state
// mutation.
//
// The query reads from the loan ledger only and runs with eventual consistency,
// so it may be served by a read replica.
package loansbymember
