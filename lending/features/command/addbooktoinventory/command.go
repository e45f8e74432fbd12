package addbooktoinventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookhive/circulation-go/lending/core"
)

const (
	commandType = "AddBookToInventory"
)

// Command represents the intent to register a book in the inventory.
// TotalCopies less than zero is rejected; CopiesTracked false registers a book
// whose physical copy count is unknown.
type Command struct {
	BookID        uuid.UUID
	Title         string
	TotalCopies   int
	CopiesTracked bool
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command for a book with a tracked copy count.
func BuildCommand(bookID uuid.UUID, title string, totalCopies int, occurredAt time.Time) Command {
	return Command{
		BookID:        bookID,
		Title:         title,
		TotalCopies:   totalCopies,
		CopiesTracked: true,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}

// BuildCommandWithUntrackedCopies creates a new Command for a book without a tracked total.
func BuildCommandWithUntrackedCopies(bookID uuid.UUID, title string, availableCopies int, occurredAt time.Time) Command {
	return Command{
		BookID:        bookID,
		Title:         title,
		TotalCopies:   availableCopies,
		CopiesTracked: false,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
