package overdueloansbymember_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/features/query/overdueloansbymember"
)

func Test_ProjectOverdueLoans_ReturnsOnlyOpenLoansPastClaimedReturnDate(t *testing.T) {
	// arrange
	memberID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()
	now := fakeClock.Add(20 * 24 * time.Hour)

	// due after 14 days, 6 days late
	overdueLoan := givenOpenLoan(memberID, fakeClock)
	// due in 4 days
	onTimeLoan := givenOpenLoan(memberID, fakeClock.Add(10*24*time.Hour))
	// was late but is closed
	closedLateLoan := givenClosedLoan(memberID, fakeClock.Add(24*time.Hour))
	// 16 days late
	veryOverdueLoan := givenOpenLoan(memberID, fakeClock.Add(-10*24*time.Hour))

	loans := []core.Loan{overdueLoan, onTimeLoan, closedLateLoan, veryOverdueLoan}

	query := overdueloansbymember.BuildQuery(memberID, now)

	// act
	result := overdueloansbymember.ProjectOverdueLoans(loans, query)

	// assert
	assert.Equal(t, memberID.String(), result.MemberID, "Result should carry the queried member ID")
	assert.Equal(t, 2, result.Count, "Expected only the open overdue loans")
	assert.Len(t, result.Loans, 2, "Expected only the open overdue loans in the slice")
	assert.Equal(t, veryOverdueLoan.ID, result.Loans[0].LoanID, "Most overdue loan should come first")
	assert.Equal(t, overdueLoan.ID, result.Loans[1].LoanID, "Less overdue loan should come last")
	assert.Equal(t, 16*24*time.Hour, result.Loans[0].OverdueBy, "OverdueBy should measure time past the claimed return date")
}

func Test_ProjectOverdueLoans_ReturnsEmptyResult_WhenNothingOverdue(t *testing.T) {
	// arrange
	memberID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()
	now := fakeClock.Add(24 * time.Hour)

	loans := []core.Loan{
		givenOpenLoan(memberID, fakeClock),
		givenClosedLoan(memberID, fakeClock),
	}

	query := overdueloansbymember.BuildQuery(memberID, now)

	// act
	result := overdueloansbymember.ProjectOverdueLoans(loans, query)

	// assert
	assert.Equal(t, 0, result.Count, "Expected no overdue loans")
	assert.Empty(t, result.Loans, "Expected an empty slice")
}

func Test_ProjectOverdueLoans_LoanDueExactlyNow_IsNotOverdue(t *testing.T) {
	// arrange
	memberID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	loan := givenOpenLoan(memberID, fakeClock)
	now := loan.ClaimedReturnDate

	query := overdueloansbymember.BuildQuery(memberID, now)

	// act
	result := overdueloansbymember.ProjectOverdueLoans([]core.Loan{loan}, query)

	// assert
	assert.Equal(t, 0, result.Count, "A loan due exactly now should not count as overdue")
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
	loan.ReturnDate = borrowDate.Add(21 * 24 * time.Hour)
	loan.Returned = true

	return loan
}
