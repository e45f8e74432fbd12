package circulationstore

import (
	"errors"
	"time"
)

var ErrMissingClaimedReturnDate = errors.New("claimed return date must not be zero")
var ErrClosedLoanWithoutReturnDate = errors.New("a closed loan must carry a return date")

// LoanRecords is an alias type for a slice of LoanRecord.
type LoanRecords = []LoanRecord

// LoanRecord is a DTO representing one row of the loan ledger.
//
// A loan is created open by a successful borrow commit and closed exactly once by the matching
// return commit; it is never deleted. Returned is false and ReturnDate is the zero time while
// the loan is open.
//
// While its properties are exported, it should only be constructed with the supplied factory methods:
//   - BuildOpenLoanRecord
//   - BuildClosedLoanRecord
type LoanRecord struct {
	ID                string
	BookID            string
	MemberID          string
	BorrowDate        time.Time
	ClaimedReturnDate time.Time
	ReturnDate        time.Time
	Returned          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// BuildOpenLoanRecord is a factory method for an open LoanRecord, as created by a borrow commit.
//
// Returns an error if claimedReturnDate is the zero time; a loan without a due date cannot
// participate in overdue auditing.
func BuildOpenLoanRecord(
	id string,
	bookID string,
	memberID string,
	borrowDate time.Time,
	claimedReturnDate time.Time,
) (LoanRecord, error) {

	if claimedReturnDate.IsZero() {
		return LoanRecord{}, ErrMissingClaimedReturnDate
	}

	return LoanRecord{
		ID:                id,
		BookID:            bookID,
		MemberID:          memberID,
		BorrowDate:        borrowDate,
		ClaimedReturnDate: claimedReturnDate,
		Returned:          false,
	}, nil
}

// BuildClosedLoanRecord is a factory method for a closed LoanRecord, as produced by a return commit.
//
// Returns an error if either date is missing.
func BuildClosedLoanRecord(
	id string,
	bookID string,
	memberID string,
	borrowDate time.Time,
	claimedReturnDate time.Time,
	returnDate time.Time,
) (LoanRecord, error) {

	if claimedReturnDate.IsZero() {
		return LoanRecord{}, ErrMissingClaimedReturnDate
	}

	if returnDate.IsZero() {
		return LoanRecord{}, ErrClosedLoanWithoutReturnDate
	}

	return LoanRecord{
		ID:                id,
		BookID:            bookID,
		MemberID:          memberID,
		BorrowDate:        borrowDate,
		ClaimedReturnDate: claimedReturnDate,
		ReturnDate:        returnDate,
		Returned:          true,
	}, nil
}

// IsOpen reports whether the loan has not been returned yet.
func (l LoanRecord) IsOpen() bool {
	return !l.Returned
}
