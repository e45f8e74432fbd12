package borrowbookcopy

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookhive/circulation-go/lending/core"
)

const (
	commandType = "BorrowBookCopy"
)

// Command represents the intent to lend a copy of a book to a member.
// It encapsulates all the necessary information required to execute the borrow use case.
type Command struct {
	BookID            uuid.UUID
	MemberID          uuid.UUID
	ClaimedReturnDate core.OccurredAt
	OccurredAt        core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, memberID uuid.UUID, claimedReturnDate time.Time, occurredAt time.Time) Command {
	return Command{
		BookID:            bookID,
		MemberID:          memberID,
		ClaimedReturnDate: core.ToOccurredAt(claimedReturnDate),
		OccurredAt:        core.ToOccurredAt(occurredAt),
	}
}
