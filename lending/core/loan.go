package core

// Loan is a snapshot of a loan ledger entry. A loan is created open and closes
// exactly once when the copy comes back; closed loans are kept forever.
type Loan struct {
	ID                LoanIDString
	BookID            BookIDString
	MemberID          MemberIDString
	BorrowDate        OccurredAt
	ClaimedReturnDate OccurredAt
	ReturnDate        OccurredAt
	Returned          bool
}

// IsOpen reports whether the copy is still out with the member.
func (l Loan) IsOpen() bool {
	return !l.Returned
}

// Close transitions the loan to its closed state. Closing a closed loan is a
// domain error; the ledger records each return exactly once.
func (l Loan) Close(returnDate OccurredAt) (Loan, error) {
	if l.Returned {
		return Loan{}, ErrLoanAlreadyClosed
	}

	closed := l
	closed.ReturnDate = ToOccurredAt(returnDate)
	closed.Returned = true

	return closed, nil
}

// IsOverdue reports whether the loan is open past its claimed return date.
func (l Loan) IsOverdue(now OccurredAt) bool {
	return l.IsOpen() && now.After(l.ClaimedReturnDate)
}
