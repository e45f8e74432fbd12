package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyReturnedChangeType is the change type identifier.
const BookCopyReturnedChangeType = "BookCopyReturned"

// BookCopyReturned represents when a member returns a borrowed copy.
// Committing it closes the loan and increments the available-copy count.
type BookCopyReturned struct {
	ChangeType ChangeTypeString
	LoanID     LoanIDString
	BookID     BookIDString
	MemberID   MemberIDString
	ReturnDate OccurredAt
}

// BuildBookCopyReturned creates a new BookCopyReturned change for an open loan.
func BuildBookCopyReturned(loan Loan, bookID uuid.UUID, memberID uuid.UUID, returnDate time.Time) BookCopyReturned {
	change := BookCopyReturned{
		ChangeType: BookCopyReturnedChangeType,
		LoanID:     loan.ID,
		BookID:     bookID.String(),
		MemberID:   memberID.String(),
		ReturnDate: ToOccurredAt(returnDate),
	}

	return change
}

// IsChangeType returns the change type identifier.
func (c BookCopyReturned) IsChangeType() string {
	return BookCopyReturnedChangeType
}

// HasOccurredAt returns when this change occurred.
func (c BookCopyReturned) HasOccurredAt() time.Time {
	return c.ReturnDate
}
