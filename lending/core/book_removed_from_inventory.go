package core

import (
	"time"

	"github.com/google/uuid"
)

// BookRemovedFromInventoryChangeType is the change type identifier.
const BookRemovedFromInventoryChangeType = "BookRemovedFromInventory"

// BookRemovedFromInventory represents when a book leaves circulation.
// The inventory row is kept and deactivated so open loans can still close.
type BookRemovedFromInventory struct {
	ChangeType ChangeTypeString
	BookID     BookIDString
	OccurredAt OccurredAt
}

// BuildBookRemovedFromInventory creates a new BookRemovedFromInventory change.
func BuildBookRemovedFromInventory(bookID uuid.UUID, occurredAt time.Time) BookRemovedFromInventory {
	change := BookRemovedFromInventory{
		ChangeType: BookRemovedFromInventoryChangeType,
		BookID:     bookID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return change
}

// IsChangeType returns the change type identifier.
func (c BookRemovedFromInventory) IsChangeType() string {
	return BookRemovedFromInventoryChangeType
}

// HasOccurredAt returns when this change occurred.
func (c BookRemovedFromInventory) HasOccurredAt() time.Time {
	return c.OccurredAt
}
