package addbooktoinventory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/features/command/addbooktoinventory"
)

func Test_Decide_Success_WhenBookIsNew(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	command := addbooktoinventory.BuildCommand(bookID, "The Go Programming Language", 4, now)

	// act
	result := addbooktoinventory.Decide(addbooktoinventory.State{}, command)

	// assert
	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	assert.NoError(t, result.HasError(), "Expected no error for success decision")

	added, ok := result.Change.(core.BookAddedToInventory)
	assert.True(t, ok, "Expected BookAddedToInventory change")
	assert.Equal(t, bookID.String(), added.BookID, "Change should have correct BookID")
	assert.Equal(t, 4, added.TotalCopies, "Change should carry the copy count")
	assert.True(t, added.CopiesTracked, "Copy count should be tracked")
}

func Test_Decide_Success_WhenCopyCountUntracked(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	command := addbooktoinventory.BuildCommandWithUntrackedCopies(bookID, "Samizdat Edition", 2, now)

	// act
	result := addbooktoinventory.Decide(addbooktoinventory.State{}, command)

	// assert
	assert.Equal(t, "success", result.Outcome, "Expected success decision")

	added, ok := result.Change.(core.BookAddedToInventory)
	assert.True(t, ok, "Expected BookAddedToInventory change")
	assert.False(t, added.CopiesTracked, "Copy count should be untracked")
}

func Test_Decide_Idempotent_WhenBookAlreadyRegistered(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	s := addbooktoinventory.State{
		Book: core.Book{
			ID:              bookID.String(),
			Title:           "The Go Programming Language",
			TotalCopies:     4,
			CopiesTracked:   true,
			AvailableCopies: 4,
			Active:          true,
			Version:         1,
		},
		BookExists: true,
	}

	command := addbooktoinventory.BuildCommand(bookID, "The Go Programming Language", 4, now)

	// act
	result := addbooktoinventory.Decide(s, command)

	// assert
	assert.Equal(t, "idempotent", result.Outcome, "Expected idempotent decision")
	assert.Nil(t, result.Change, "Expected no change for idempotent decision")
	assert.NoError(t, result.HasError(), "Expected no error for idempotent decision")
}

func Test_Decide_Error_WhenTotalCopiesNegative(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	command := addbooktoinventory.BuildCommand(bookID, "The Go Programming Language", -1, now)

	// act
	result := addbooktoinventory.Decide(addbooktoinventory.State{}, command)

	// assert
	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidTotalCopies, "Expected invalid-total-copies error")
}

func Test_Decide_Success_WhenZeroCopies(t *testing.T) {
	// arrange - a catalog-only entry with no physical copies is legal
	bookID := uuid.New()
	now := time.Now()

	command := addbooktoinventory.BuildCommand(bookID, "Catalog Only Title", 0, now)

	// act
	result := addbooktoinventory.Decide(addbooktoinventory.State{}, command)

	// assert
	assert.Equal(t, "success", result.Outcome, "Expected success decision for zero copies")
}
