package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyBorrowedChangeType is the change type identifier.
const BookCopyBorrowedChangeType = "BookCopyBorrowed"

// BookCopyBorrowed represents when a member borrows a copy of a book.
// Committing it decrements the available-copy count and opens the loan.
type BookCopyBorrowed struct {
	ChangeType        ChangeTypeString
	LoanID            LoanIDString
	BookID            BookIDString
	MemberID          MemberIDString
	BorrowDate        OccurredAt
	ClaimedReturnDate OccurredAt
}

// BuildBookCopyBorrowed creates a new BookCopyBorrowed change with a fresh loan id.
func BuildBookCopyBorrowed(
	bookID uuid.UUID,
	memberID uuid.UUID,
	borrowDate time.Time,
	claimedReturnDate time.Time,
) BookCopyBorrowed {

	change := BookCopyBorrowed{
		ChangeType:        BookCopyBorrowedChangeType,
		LoanID:            uuid.New().String(),
		BookID:            bookID.String(),
		MemberID:          memberID.String(),
		BorrowDate:        ToOccurredAt(borrowDate),
		ClaimedReturnDate: ToOccurredAt(claimedReturnDate),
	}

	return change
}

// IsChangeType returns the change type identifier.
func (c BookCopyBorrowed) IsChangeType() string {
	return BookCopyBorrowedChangeType
}

// HasOccurredAt returns when this change occurred.
func (c BookCopyBorrowed) HasOccurredAt() time.Time {
	return c.BorrowDate
}
