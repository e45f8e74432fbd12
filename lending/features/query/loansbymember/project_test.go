package loansbymember_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/features/query/loansbymember"
)

func Test_ProjectMemberLoanHistory_ReturnsAllLoansOrderedByBorrowDate(t *testing.T) {
	// arrange
	memberID := uuid.New()
	bookID1 := uuid.New()
	bookID2 := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	closedLoan := givenClosedLoan(bookID1, memberID, fakeClock.Add(2*time.Hour))
	openLoan := givenOpenLoan(bookID2, memberID, fakeClock.Add(time.Hour))

	// the store may hand records back in any order
	loans := []core.Loan{closedLoan, openLoan}

	query := loansbymember.BuildQuery(memberID)

	// act
	result := loansbymember.ProjectMemberLoanHistory(loans, query)

	// assert
	assert.Equal(t, memberID.String(), result.MemberID, "Result should carry the queried member ID")
	assert.Equal(t, 2, result.Count, "Expected both loans in the history")
	assert.Len(t, result.Loans, 2, "Expected both loans in the slice")
	assert.Equal(t, openLoan.ID, result.Loans[0].LoanID, "Oldest borrow should come first")
	assert.Equal(t, closedLoan.ID, result.Loans[1].LoanID, "Newest borrow should come last")
	assert.False(t, result.Loans[0].Returned, "Open loan should not be marked returned")
	assert.True(t, result.Loans[1].Returned, "Closed loan should be marked returned")
}

func Test_ProjectMemberLoanHistory_ReturnsEmptyHistory_WhenMemberHasNoLoans(t *testing.T) {
	// arrange
	memberID := uuid.New()
	query := loansbymember.BuildQuery(memberID)

	// act
	result := loansbymember.ProjectMemberLoanHistory(nil, query)

	// assert
	assert.Equal(t, memberID.String(), result.MemberID, "Result should carry the queried member ID")
	assert.Equal(t, 0, result.Count, "Expected an empty history")
	assert.Empty(t, result.Loans, "Expected no loans in the slice")
}

func givenOpenLoan(bookID, memberID uuid.UUID, borrowDate time.Time) core.Loan {
	return core.Loan{
		ID:                uuid.New().String(),
		BookID:            bookID.String(),
		MemberID:          memberID.String(),
		BorrowDate:        borrowDate,
		ClaimedReturnDate: borrowDate.Add(14 * 24 * time.Hour),
	}
}

func givenClosedLoan(bookID, memberID uuid.UUID, borrowDate time.Time) core.Loan {
	loan := givenOpenLoan(bookID, memberID, borrowDate)
	loan.ReturnDate = borrowDate.Add(7 * 24 * time.Hour)
	loan.Returned = true

	return loan
}
