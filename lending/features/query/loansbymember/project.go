package loansbymember

import (
	"slices"

	"github.com/bookhive/circulation-go/lending/core"
)

// ProjectMemberLoanHistory implements the query logic for a member's loan history.
// This is a pure function with no side effects - it takes the member's loan records
// and a query and returns the projected history ordered by borrow date.
//
// Query Logic:
//
//	GIVEN: A member with MemberID
//	WHEN: LoansByMember query is executed
//	THEN: MemberLoanHistory struct is returned with every loan of the member
//	INCLUDES: Open and closed loans
//	ORDER: By borrow date, oldest first
func ProjectMemberLoanHistory(loans []core.Loan, query Query) MemberLoanHistory {
	infos := make([]LoanInfo, 0, len(loans))

	for _, loan := range loans {
		infos = append(infos, LoanInfo{
			LoanID:            loan.ID,
			BookID:            loan.BookID,
			BorrowDate:        loan.BorrowDate,
			ClaimedReturnDate: loan.ClaimedReturnDate,
			ReturnDate:        loan.ReturnDate,
			Returned:          loan.Returned,
		})
	}

	slices.SortFunc(infos, func(a, b LoanInfo) int {
		return a.BorrowDate.Compare(b.BorrowDate)
	})

	return MemberLoanHistory{
		MemberID: query.MemberID.String(),
		Loans:    infos,
		Count:    len(infos),
	}
}
