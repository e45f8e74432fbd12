package loansbymember

import (
	"time"

	"github.com/bookhive/circulation-go/lending/core"
)

// LoanInfo represents one loan of the member, open or closed.
type LoanInfo struct {
	LoanID            core.LoanIDString
	BookID            core.BookIDString
	BorrowDate        time.Time
	ClaimedReturnDate time.Time
	ReturnDate        time.Time
	Returned          bool
}

// MemberLoanHistory represents the query result containing all loans of a member.
type MemberLoanHistory struct {
	MemberID core.MemberIDString
	Loans    []LoanInfo
	Count    int
}
