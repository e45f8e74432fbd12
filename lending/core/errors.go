package core

import "errors"

// Business rule violations returned from Decide functions. Handlers map these
// onto the non-retryable failure outcome; they are never wrapped in
// infrastructure errors.
var (
	// ErrBookNotInInventory is returned when the referenced book was never added.
	ErrBookNotInInventory = errors.New("book is not in the inventory")

	// ErrBookNotInCirculation is returned when the book exists but was removed.
	ErrBookNotInCirculation = errors.New("book is no longer in circulation")

	// ErrNoCopiesAvailable is returned when all copies of the book are lent out.
	ErrNoCopiesAvailable = errors.New("no copies of this book are available")

	// ErrNoOpenLoan is returned when a return references no open loan for the
	// member and book pair.
	ErrNoOpenLoan = errors.New("member has no open loan for this book")

	// ErrInvalidClaimedReturnDate is returned when the promised return date
	// lies before the borrow date. A claim equal to the borrow timestamp is a
	// valid same-day loan.
	ErrInvalidClaimedReturnDate = errors.New("claimed return date must not precede the borrow date")

	// ErrLoanAlreadyClosed is returned when a loan transition is attempted on
	// a loan that is already closed.
	ErrLoanAlreadyClosed = errors.New("loan is already closed")

	// ErrInvalidTotalCopies is returned when a book is added with a negative copy count.
	ErrInvalidTotalCopies = errors.New("total copies must not be negative")
)
