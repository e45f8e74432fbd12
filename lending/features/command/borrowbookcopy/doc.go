// Package borrowbookcopy implements the Borrow Book Copy use case.
//
// This feature lends an available copy of a book to a member. It follows the
// Load-Decide-Commit pattern with proper separation between infrastructure
// concerns (CommandHandler) and pure business logic (Decide function).
//
// The business logic enforces that the book exists, is in circulation, has a
// copy available and that the claimed return date lies after the borrow date.
// The decrement of the available-copy count and the opening of the loan commit
// in one transaction, so a crash can never leave a copy lent without a loan.
// A member holding an open loan for the book gets an idempotent no-op.
package borrowbookcopy
