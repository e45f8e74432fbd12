package returnbookcopy_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/features/command/returnbookcopy"
)

func Test_Decide_Success_WhenOpenLoanExists(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	loanID := uuid.New()
	now := time.Now()

	s := givenStateWithOpenLoan(t, bookID, memberID, loanID, now)
	command := returnbookcopy.BuildCommand(bookID, memberID, now)

	// act
	result := returnbookcopy.Decide(s, command)

	// assert
	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	assert.NoError(t, result.HasError(), "Expected no error for success decision")

	returned, ok := result.Change.(core.BookCopyReturned)
	assert.True(t, ok, "Expected BookCopyReturned change")
	assert.Equal(t, loanID.String(), returned.LoanID, "Change should close the existing open loan")
	assert.Equal(t, bookID.String(), returned.BookID, "Change should have correct BookID")
	assert.Equal(t, memberID.String(), returned.MemberID, "Change should have correct MemberID")
}

func Test_Decide_Success_WhenBookRemovedFromCirculation(t *testing.T) {
	// arrange - removal stops new borrows, not returns
	bookID := uuid.New()
	memberID := uuid.New()
	loanID := uuid.New()
	now := time.Now()

	s := givenStateWithOpenLoan(t, bookID, memberID, loanID, now)
	s.Book.Active = false

	command := returnbookcopy.BuildCommand(bookID, memberID, now)

	// act
	result := returnbookcopy.Decide(s, command)

	// assert
	assert.Equal(t, "success", result.Outcome, "Expected success decision for inactive book")
	assert.NoError(t, result.HasError(), "Expected no error returning to an inactive book")
}

func Test_Decide_Error_WhenBookNotInInventory(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	command := returnbookcopy.BuildCommand(bookID, memberID, now)

	// act
	result := returnbookcopy.Decide(returnbookcopy.State{}, command)

	// assert
	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	assert.ErrorIs(t, result.HasError(), core.ErrBookNotInInventory, "Expected book-not-in-inventory error")
}

func Test_Decide_Error_WhenNoOpenLoan(t *testing.T) {
	// arrange - book exists but the member holds nothing
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	s := returnbookcopy.State{
		Book: core.Book{
			ID:              bookID.String(),
			Title:           "Test Book Title",
			TotalCopies:     5,
			CopiesTracked:   true,
			AvailableCopies: 5,
			Active:          true,
			Version:         2,
		},
		BookExists: true,
	}

	command := returnbookcopy.BuildCommand(bookID, memberID, now)

	// act
	result := returnbookcopy.Decide(s, command)

	// assert
	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	assert.ErrorIs(t, result.HasError(), core.ErrNoOpenLoan, "Expected no-open-loan error")
	assert.Nil(t, result.Change, "Expected no change for error decision")
}

func Test_Decide_Error_AfterLoanAlreadyClosed(t *testing.T) {
	// arrange - a second return of the same copy finds no open loan
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	s := returnbookcopy.State{
		Book: core.Book{
			ID:              bookID.String(),
			Title:           "Test Book Title",
			TotalCopies:     5,
			CopiesTracked:   true,
			AvailableCopies: 5,
			Active:          true,
			Version:         4,
		},
		BookExists:  true,
		HasOpenLoan: false,
	}

	command := returnbookcopy.BuildCommand(bookID, memberID, now)

	// act
	result := returnbookcopy.Decide(s, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrNoOpenLoan, "Repeated return should report no open loan")
}

// Test helper functions with t.Helper() for better error reporting

func givenStateWithOpenLoan(t *testing.T, bookID, memberID, loanID uuid.UUID, now time.Time) returnbookcopy.State {
	t.Helper()

	return returnbookcopy.State{
		Book: core.Book{
			ID:              bookID.String(),
			Title:           "Test Book Title",
			TotalCopies:     5,
			CopiesTracked:   true,
			AvailableCopies: 4,
			Active:          true,
			Version:         6,
		},
		BookExists: true,
		OpenLoan: core.Loan{
			ID:                loanID.String(),
			BookID:            bookID.String(),
			MemberID:          memberID.String(),
			BorrowDate:        core.ToOccurredAt(now.Add(-72 * time.Hour)),
			ClaimedReturnDate: core.ToOccurredAt(now.Add(11 * 24 * time.Hour)),
		},
		HasOpenLoan: true,
	}
}
