package openloansbymember

import (
	"time"

	"github.com/bookhive/circulation-go/lending/core"
)

// OpenLoanInfo represents one book copy a member currently holds.
type OpenLoanInfo struct {
	LoanID            core.LoanIDString
	BookID            core.BookIDString
	BorrowDate        time.Time
	ClaimedReturnDate time.Time
}

// OpenLoans represents the query result containing the member's open loans.
type OpenLoans struct {
	MemberID core.MemberIDString
	Loans    []OpenLoanInfo
	Count    int
}
