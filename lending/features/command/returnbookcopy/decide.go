package returnbookcopy

import (
	"github.com/bookhive/circulation-go/lending/core"
)

// State represents the current state loaded from the circulation store.
type State struct {
	Book        core.Book
	BookExists  bool
	OpenLoan    core.Loan
	HasOpenLoan bool
}

// Decide implements the business logic to determine whether a copy can be
// returned. This is a pure function with no side effects - it takes the loaded
// state and a command and returns the state change that should be committed.
//
// Business Rules:
//
//	GIVEN: A book with BookID and member with MemberID
//	WHEN: ReturnBookCopy command is received
//	THEN: BookCopyReturned change is generated, closing the member's open loan
//	ERROR: "book is not in the inventory" if the book row does not exist
//	ERROR: "member has no open loan for this book" if there is nothing to return
//
// A removed (inactive) book can still be returned; removal only stops new borrows.
func Decide(s State, command Command) core.DecisionResult {
	if !s.BookExists {
		return core.ErrorDecision(core.ErrBookNotInInventory)
	}

	if !s.HasOpenLoan {
		return core.ErrorDecision(core.ErrNoOpenLoan)
	}

	return core.SuccessDecision(
		core.BuildBookCopyReturned(
			s.OpenLoan,
			command.BookID,
			command.MemberID,
			command.OccurredAt,
		),
	)
}
