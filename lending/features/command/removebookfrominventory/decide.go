package removebookfrominventory

import (
	"github.com/bookhive/circulation-go/lending/core"
)

// State represents the current state loaded from the circulation store.
type State struct {
	Book       core.Book
	BookExists bool
}

// Decide implements the business logic for taking a book out of circulation.
//
// Business Rules:
//
//	GIVEN: A book with BookID
//	WHEN: RemoveBookFromInventory command is received
//	THEN: BookRemovedFromInventory change is generated
//	ERROR: "book is not in the inventory" if the book was never added
//	IDEMPOTENCY: If the book is already out of circulation, no change generated (no-op)
//
// Copies currently lent out do not block removal; their loans stay open and
// close normally on return.
func Decide(s State, command Command) core.DecisionResult {
	if !s.BookExists {
		return core.ErrorDecision(core.ErrBookNotInInventory)
	}

	if !s.Book.InCirculation() {
		return core.IdempotentDecision() // idempotency - the book is already removed
	}

	return core.SuccessDecision(
		core.BuildBookRemovedFromInventory(
			command.BookID,
			command.OccurredAt,
		),
	)
}
