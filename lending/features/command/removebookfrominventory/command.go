package removebookfrominventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookhive/circulation-go/lending/core"
)

const (
	commandType = "RemoveBookFromInventory"
)

// Command represents the intent to take a book out of circulation.
type Command struct {
	BookID     uuid.UUID
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
