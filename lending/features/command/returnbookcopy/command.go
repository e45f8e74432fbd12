package returnbookcopy

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookhive/circulation-go/lending/core"
)

const (
	commandType = "ReturnBookCopy"
)

// Command represents the intent to return a borrowed copy of a book.
type Command struct {
	BookID     uuid.UUID
	MemberID   uuid.UUID
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, memberID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		MemberID:   memberID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
