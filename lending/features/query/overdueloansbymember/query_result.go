package overdueloansbymember

import (
	"time"

	"github.com/bookhive/circulation-go/lending/core"
)

// OverdueLoanInfo represents one open loan whose claimed return date has passed.
type OverdueLoanInfo struct {
	LoanID            core.LoanIDString
	BookID            core.BookIDString
	BorrowDate        time.Time
	ClaimedReturnDate time.Time
	OverdueBy         time.Duration
}

// OverdueLoans represents the query result containing the member's overdue loans.
type OverdueLoans struct {
	MemberID core.MemberIDString
	Loans    []OverdueLoanInfo
	Count    int
}
