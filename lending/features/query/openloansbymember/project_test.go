package openloansbymember_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/features/query/openloansbymember"
)

func Test_ProjectOpenLoans_ExcludesClosedLoans(t *testing.T) {
	// arrange
	memberID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	openLoan1 := givenOpenLoan(memberID, fakeClock.Add(time.Hour))
	openLoan2 := givenOpenLoan(memberID, fakeClock.Add(3*time.Hour))
	closedLoan := givenClosedLoan(memberID, fakeClock.Add(2*time.Hour))

	loans := []core.Loan{openLoan2, closedLoan, openLoan1}

	query := openloansbymember.BuildQuery(memberID)

	// act
	result := openloansbymember.ProjectOpenLoans(loans, query)

	// assert
	assert.Equal(t, memberID.String(), result.MemberID, "Result should carry the queried member ID")
	assert.Equal(t, 2, result.Count, "Expected only the open loans")
	assert.Len(t, result.Loans, 2, "Expected only the open loans in the slice")
	assert.Equal(t, openLoan1.ID, result.Loans[0].LoanID, "Oldest open borrow should come first")
	assert.Equal(t, openLoan2.ID, result.Loans[1].LoanID, "Newest open borrow should come last")
}

func Test_ProjectOpenLoans_ReturnsEmptyResult_WhenAllLoansClosed(t *testing.T) {
	// arrange
	memberID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	loans := []core.Loan{
		givenClosedLoan(memberID, fakeClock.Add(time.Hour)),
		givenClosedLoan(memberID, fakeClock.Add(2*time.Hour)),
	}

	query := openloansbymember.BuildQuery(memberID)

	// act
	result := openloansbymember.ProjectOpenLoans(loans, query)

	// assert
	assert.Equal(t, 0, result.Count, "Expected no open loans")
	assert.Empty(t, result.Loans, "Expected an empty slice")
}

func givenOpenLoan(memberID uuid.UUID, borrowDate time.Time) core.Loan {
	return core.Loan{
		ID:                uuid.New().String(),
		BookID:            uuid.New().String(),
		MemberID:          memberID.String(),
		BorrowDate:        borrowDate,
		ClaimedReturnDate: borrowDate.Add(14 * 24 * time.Hour),
	}
}

func givenClosedLoan(memberID uuid.UUID, borrowDate time.Time) core.Loan {
	loan := givenOpenLoan(memberID, borrowDate)
	loan.ReturnDate = borrowDate.Add(7 * 24 * time.Hour)
	loan.Returned = true

	return loan
}
