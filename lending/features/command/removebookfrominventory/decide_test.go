package removebookfrominventory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/features/command/removebookfrominventory"
)

func Test_Decide_Success_WhenBookInCirculation(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	s := removebookfrominventory.State{
		Book:       givenActiveBook(bookID),
		BookExists: true,
	}

	command := removebookfrominventory.BuildCommand(bookID, now)

	// act
	result := removebookfrominventory.Decide(s, command)

	// assert
	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	assert.NoError(t, result.HasError(), "Expected no error for success decision")

	removed, ok := result.Change.(core.BookRemovedFromInventory)
	assert.True(t, ok, "Expected BookRemovedFromInventory change")
	assert.Equal(t, bookID.String(), removed.BookID, "Change should have correct BookID")
}

func Test_Decide_Success_WhenCopiesStillLentOut(t *testing.T) {
	// arrange - open loans do not block removal, they close on return
	bookID := uuid.New()
	now := time.Now()

	book := givenActiveBook(bookID)
	book.AvailableCopies = 0

	s := removebookfrominventory.State{
		Book:       book,
		BookExists: true,
	}

	command := removebookfrominventory.BuildCommand(bookID, now)

	// act
	result := removebookfrominventory.Decide(s, command)

	// assert
	assert.Equal(t, "success", result.Outcome, "Expected success decision with copies lent out")
}

func Test_Decide_Idempotent_WhenBookAlreadyRemoved(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	book := givenActiveBook(bookID)
	book.Active = false

	s := removebookfrominventory.State{
		Book:       book,
		BookExists: true,
	}

	command := removebookfrominventory.BuildCommand(bookID, now)

	// act
	result := removebookfrominventory.Decide(s, command)

	// assert
	assert.Equal(t, "idempotent", result.Outcome, "Expected idempotent decision")
	assert.Nil(t, result.Change, "Expected no change for idempotent decision")
	assert.NoError(t, result.HasError(), "Expected no error for idempotent decision")
}

func Test_Decide_Error_WhenBookWasNeverAdded(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	command := removebookfrominventory.BuildCommand(bookID, now)

	// act
	result := removebookfrominventory.Decide(removebookfrominventory.State{}, command)

	// assert
	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	assert.ErrorIs(t, result.HasError(), core.ErrBookNotInInventory, "Expected not-in-inventory error")
}

func givenActiveBook(bookID uuid.UUID) core.Book {
	return core.Book{
		ID:              bookID.String(),
		Title:           "The Go Programming Language",
		TotalCopies:     3,
		CopiesTracked:   true,
		AvailableCopies: 2,
		Active:          true,
		Version:         4,
	}
}
