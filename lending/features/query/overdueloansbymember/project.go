package overdueloansbymember

import (
	"slices"

	"github.com/bookhive/circulation-go/lending/core"
)

// ProjectOverdueLoans implements the query logic for a member's overdue loans.
// This is a pure function with no side effects - it takes the member's loan records
// and a query and returns the open loans whose claimed return date lies before the
// query's reference time.
//
// Query Logic:
//
//	GIVEN: A member with MemberID and a reference time Now
//	WHEN: OverdueLoansByMember query is executed
//	THEN: OverdueLoans struct is returned with the member's overdue loans
//	EXCLUDES: Closed loans and open loans still within their claimed return date
//	ORDER: By claimed return date, most overdue first
func ProjectOverdueLoans(loans []core.Loan, query Query) OverdueLoans {
	infos := make([]OverdueLoanInfo, 0)

	for _, loan := range loans {
		if !loan.IsOverdue(query.Now) {
			continue
		}

		infos = append(infos, OverdueLoanInfo{
			LoanID:            loan.ID,
			BookID:            loan.BookID,
			BorrowDate:        loan.BorrowDate,
			ClaimedReturnDate: loan.ClaimedReturnDate,
			OverdueBy:         query.Now.Sub(loan.ClaimedReturnDate),
		})
	}

	slices.SortFunc(infos, func(a, b OverdueLoanInfo) int {
		return a.ClaimedReturnDate.Compare(b.ClaimedReturnDate)
	})

	return OverdueLoans{
		MemberID: query.MemberID.String(),
		Loans:    infos,
		Count:    len(infos),
	}
}
