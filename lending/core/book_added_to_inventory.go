package core

import (
	"time"

	"github.com/google/uuid"
)

// BookAddedToInventoryChangeType is the change type identifier.
const BookAddedToInventoryChangeType = "BookAddedToInventory"

// BookAddedToInventory represents when a book enters the inventory.
// TotalCopies is zero and CopiesTracked false for books whose physical
// copy count is not tracked.
type BookAddedToInventory struct {
	ChangeType    ChangeTypeString
	BookID        BookIDString
	Title         string
	TotalCopies   int
	CopiesTracked bool
	OccurredAt    OccurredAt
}

// BuildBookAddedToInventory creates a new BookAddedToInventory change with a tracked copy count.
func BuildBookAddedToInventory(bookID uuid.UUID, title string, totalCopies int, occurredAt time.Time) BookAddedToInventory {
	change := BookAddedToInventory{
		ChangeType:    BookAddedToInventoryChangeType,
		BookID:        bookID.String(),
		Title:         title,
		TotalCopies:   totalCopies,
		CopiesTracked: true,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return change
}

// BuildUntrackedBookAddedToInventory creates a new BookAddedToInventory change
// for a book without a tracked total copy count.
func BuildUntrackedBookAddedToInventory(bookID uuid.UUID, title string, availableCopies int, occurredAt time.Time) BookAddedToInventory {
	change := BookAddedToInventory{
		ChangeType:    BookAddedToInventoryChangeType,
		BookID:        bookID.String(),
		Title:         title,
		TotalCopies:   availableCopies,
		CopiesTracked: false,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return change
}

// IsChangeType returns the change type identifier.
func (c BookAddedToInventory) IsChangeType() string {
	return BookAddedToInventoryChangeType
}

// HasOccurredAt returns when this change occurred.
func (c BookAddedToInventory) HasOccurredAt() time.Time {
	return c.OccurredAt
}
