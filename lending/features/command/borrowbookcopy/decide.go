package borrowbookcopy

import (
	"github.com/bookhive/circulation-go/lending/core"
)

// State represents the current state loaded from the circulation store.
type State struct {
	Book                core.Book
	BookExists          bool
	OpenLoan            core.Loan
	MemberHoldsThisBook bool
}

// Decide implements the business logic to determine whether a book copy should be
// lent to a member. This is a pure function with no side effects - it takes the
// loaded state and a command and returns the state change that should be committed.
//
// Business Rules:
//
//	GIVEN: A book with BookID and member with MemberID
//	WHEN: BorrowBookCopy command is received
//	THEN: BookCopyBorrowed change is generated
//	ERROR: "book is not in the inventory" if the book was never added
//	ERROR: "book is no longer in circulation" if the book was removed
//	ERROR: "no copies of this book are available" if every copy is lent out
//	ERROR: "claimed return date must not precede the borrow date" for a bad claim
//	IDEMPOTENCY: If the member already holds an open loan for this book, no change generated (no-op)
func Decide(s State, command Command) core.DecisionResult {
	if s.MemberHoldsThisBook {
		return core.IdempotentDecision() // idempotency - the member already holds this book, so no new loan
	}

	if command.ClaimedReturnDate.Before(command.OccurredAt) {
		return core.ErrorDecision(core.ErrInvalidClaimedReturnDate)
	}

	if !s.BookExists {
		return core.ErrorDecision(core.ErrBookNotInInventory)
	}

	if !s.Book.InCirculation() {
		return core.ErrorDecision(core.ErrBookNotInCirculation)
	}

	if !s.Book.HasAvailableCopy() {
		return core.ErrorDecision(core.ErrNoCopiesAvailable)
	}

	return core.SuccessDecision(
		core.BuildBookCopyBorrowed(
			command.BookID,
			command.MemberID,
			command.OccurredAt,
			command.ClaimedReturnDate,
		),
	)
}
