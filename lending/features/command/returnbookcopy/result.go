package returnbookcopy

import (
	"github.com/bookhive/circulation-go/lending/core"
)

// Result is the snapshot returned after a successful return.
type Result struct {
	LoanID            core.LoanIDString
	BookID            core.BookIDString
	MemberID          core.MemberIDString
	Title             string
	BorrowDate        core.OccurredAt
	ClaimedReturnDate core.OccurredAt
	ReturnDate        core.OccurredAt
	AvailableCopies   int
}
