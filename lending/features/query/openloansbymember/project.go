package openloansbymember

import (
	"slices"

	"github.com/bookhive/circulation-go/lending/core"
)

// ProjectOpenLoans implements the query logic for a member's open loans.
// This is a pure function with no side effects - it takes the member's loan records
// and a query and returns the loans that have not been closed by a return.
//
// Query Logic:
//
//	GIVEN: A member with MemberID
//	WHEN: OpenLoansByMember query is executed
//	THEN: OpenLoans struct is returned with the copies the member currently holds
//	EXCLUDES: Loans closed by a return
//	ORDER: By borrow date, oldest first
func ProjectOpenLoans(loans []core.Loan, query Query) OpenLoans {
	infos := make([]OpenLoanInfo, 0)

	for _, loan := range loans {
		if !loan.IsOpen() {
			continue
		}

		infos = append(infos, OpenLoanInfo{
			LoanID:            loan.ID,
			BookID:            loan.BookID,
			BorrowDate:        loan.BorrowDate,
			ClaimedReturnDate: loan.ClaimedReturnDate,
		})
	}

	slices.SortFunc(infos, func(a, b OpenLoanInfo) int {
		return a.BorrowDate.Compare(b.BorrowDate)
	})

	return OpenLoans{
		MemberID: query.MemberID.String(),
		Loans:    infos,
		Count:    len(infos),
	}
}
