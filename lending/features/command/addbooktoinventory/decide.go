package addbooktoinventory

import (
	"github.com/bookhive/circulation-go/lending/core"
)

// State represents the current state loaded from the circulation store.
type State struct {
	Book       core.Book
	BookExists bool
}

// Decide implements the business logic for registering a book.
//
// Business Rules:
//
//	GIVEN: A book with BookID
//	WHEN: AddBookToInventory command is received
//	THEN: BookAddedToInventory change is generated with every copy available
//	ERROR: "total copies must not be negative" for a negative copy count
//	IDEMPOTENCY: If the book id already exists, no change generated (no-op)
func Decide(s State, command Command) core.DecisionResult {
	if s.BookExists {
		return core.IdempotentDecision() // idempotency - re-adding the same book id changes nothing
	}

	if command.TotalCopies < 0 {
		return core.ErrorDecision(core.ErrInvalidTotalCopies)
	}

	if !command.CopiesTracked {
		return core.SuccessDecision(
			core.BuildUntrackedBookAddedToInventory(
				command.BookID,
				command.Title,
				command.TotalCopies,
				command.OccurredAt,
			),
		)
	}

	return core.SuccessDecision(
		core.BuildBookAddedToInventory(
			command.BookID,
			command.Title,
			command.TotalCopies,
			command.OccurredAt,
		),
	)
}
