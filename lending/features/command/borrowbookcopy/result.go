package borrowbookcopy

import (
	"github.com/bookhive/circulation-go/lending/core"
)

// Result is the snapshot returned after a successful (or idempotent) borrow.
// AvailableCopies is the count as of the committed transaction; with the
// version-checked commit it cannot be stale.
type Result struct {
	LoanID            core.LoanIDString
	BookID            core.BookIDString
	MemberID          core.MemberIDString
	Title             string
	BorrowDate        core.OccurredAt
	ClaimedReturnDate core.OccurredAt
	AvailableCopies   int
}
