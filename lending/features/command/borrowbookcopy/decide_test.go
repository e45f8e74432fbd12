package borrowbookcopy_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/features/command/borrowbookcopy"
)

func Test_Decide_Success_WhenAllPreconditionsMet(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	s := givenActiveBook(t, bookID, 3, 5)
	command := borrowbookcopy.BuildCommand(bookID, memberID, now.Add(14*24*time.Hour), now)

	// act
	result := borrowbookcopy.Decide(s, command)

	// assert
	assertSuccessDecision(t, result, bookID, memberID)
}

func Test_Decide_Success_WhenLastCopyAvailable(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	s := givenActiveBook(t, bookID, 1, 5)
	command := borrowbookcopy.BuildCommand(bookID, memberID, now.Add(14*24*time.Hour), now)

	// act
	result := borrowbookcopy.Decide(s, command)

	// assert
	assertSuccessDecision(t, result, bookID, memberID)
}

func Test_Decide_Success_WhenCopyCountUntracked(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	s := borrowbookcopy.State{
		Book: core.Book{
			ID:              bookID.String(),
			Title:           "Test Book Title",
			CopiesTracked:   false,
			AvailableCopies: 2,
			Active:          true,
			Version:         7,
		},
		BookExists: true,
	}

	command := borrowbookcopy.BuildCommand(bookID, memberID, now.Add(14*24*time.Hour), now)

	// act
	result := borrowbookcopy.Decide(s, command)

	// assert
	assertSuccessDecision(t, result, bookID, memberID)
}

func Test_Decide_Success_WhenClaimedReturnDateEqualsBorrowDate(t *testing.T) {
	// arrange - a same-day loan promises the copy back on the borrow timestamp
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	s := givenActiveBook(t, bookID, 3, 5)
	command := borrowbookcopy.BuildCommand(bookID, memberID, now, now)

	// act
	result := borrowbookcopy.Decide(s, command)

	// assert
	assertSuccessDecision(t, result, bookID, memberID)
}

func Test_Decide_Idempotent_WhenMemberAlreadyHoldsThisBook(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	s := givenActiveBook(t, bookID, 2, 5)
	s.MemberHoldsThisBook = true
	s.OpenLoan = core.Loan{
		ID:                uuid.New().String(),
		BookID:            bookID.String(),
		MemberID:          memberID.String(),
		BorrowDate:        core.ToOccurredAt(now.Add(-48 * time.Hour)),
		ClaimedReturnDate: core.ToOccurredAt(now.Add(12 * 24 * time.Hour)),
	}

	command := borrowbookcopy.BuildCommand(bookID, memberID, now.Add(14*24*time.Hour), now)

	// act
	result := borrowbookcopy.Decide(s, command)

	// assert
	assertIdempotentDecision(t, result)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name              string
		state             borrowbookcopy.State
		claimedReturnDate time.Time
		expectedErr       error
	}{
		{
			name:              "book never added to the inventory",
			state:             borrowbookcopy.State{},
			claimedReturnDate: now.Add(14 * 24 * time.Hour),
			expectedErr:       core.ErrBookNotInInventory,
		},
		{
			name: "book removed from circulation",
			state: func() borrowbookcopy.State {
				s := givenActiveBook(t, bookID, 3, 5)
				s.Book.Active = false
				return s
			}(),
			claimedReturnDate: now.Add(14 * 24 * time.Hour),
			expectedErr:       core.ErrBookNotInCirculation,
		},
		{
			name:              "all copies lent out",
			state:             givenActiveBook(t, bookID, 0, 5),
			claimedReturnDate: now.Add(14 * 24 * time.Hour),
			expectedErr:       core.ErrNoCopiesAvailable,
		},
		{
			name:              "claimed return date before borrow date",
			state:             givenActiveBook(t, bookID, 3, 5),
			claimedReturnDate: now.Add(-time.Hour),
			expectedErr:       core.ErrInvalidClaimedReturnDate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := borrowbookcopy.BuildCommand(bookID, memberID, tc.claimedReturnDate, now)

			// act
			result := borrowbookcopy.Decide(tc.state, command)

			// assert
			assertErrorDecision(t, result, tc.expectedErr)
		})
	}
}

func Test_Decide_InvalidClaimTrumpsAvailability(t *testing.T) {
	// arrange - both the claim and the availability are bad; validation wins
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	s := givenActiveBook(t, bookID, 0, 5)
	command := borrowbookcopy.BuildCommand(bookID, memberID, now.Add(-time.Hour), now)

	// act
	result := borrowbookcopy.Decide(s, command)

	// assert
	assertErrorDecision(t, result, core.ErrInvalidClaimedReturnDate)
}

// Test helper functions with t.Helper() for better error reporting

func givenActiveBook(t *testing.T, bookID uuid.UUID, availableCopies int, totalCopies int) borrowbookcopy.State {
	t.Helper()

	return borrowbookcopy.State{
		Book: core.Book{
			ID:              bookID.String(),
			Title:           "Test Book Title",
			TotalCopies:     totalCopies,
			CopiesTracked:   true,
			AvailableCopies: availableCopies,
			Active:          true,
			Version:         3,
		},
		BookExists: true,
	}
}

func assertSuccessDecision(t *testing.T, result core.DecisionResult, bookID, memberID uuid.UUID) {
	t.Helper()
	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	assert.NotNil(t, result.Change, "Expected change to be generated")
	assert.NoError(t, result.HasError(), "Expected no error for success decision")

	// Verify the generated change
	borrowed, ok := result.Change.(core.BookCopyBorrowed)
	assert.True(t, ok, "Expected BookCopyBorrowed change")
	assert.Equal(t, bookID.String(), borrowed.BookID, "Change should have correct BookID")
	assert.Equal(t, memberID.String(), borrowed.MemberID, "Change should have correct MemberID")
	assert.NotEmpty(t, borrowed.LoanID, "Change should carry a fresh loan id")
}

func assertIdempotentDecision(t *testing.T, result core.DecisionResult) {
	t.Helper()
	assert.Equal(t, "idempotent", result.Outcome, "Expected idempotent decision")
	assert.Nil(t, result.Change, "Expected no change for idempotent decision")
	assert.NoError(t, result.HasError(), "Expected no error for idempotent decision")
}

func assertErrorDecision(t *testing.T, result core.DecisionResult, expectedErr error) {
	t.Helper()
	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	assert.Nil(t, result.Change, "Expected no change for error decision")
	assert.Error(t, result.HasError(), "Expected error for error decision")
	assert.ErrorIs(t, result.HasError(), expectedErr, "Error should match the expected business rule violation")
}
