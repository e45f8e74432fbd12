package returnbookcopy_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/circulationstore"
	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/features/command/borrowbookcopy"
	"github.com/bookhive/circulation-go/lending/features/command/returnbookcopy"
	"github.com/bookhive/circulation-go/testutil/circulationstore/fakestore"
)

func Test_CommandHandler_Handle_ClosesLoanAndIncrementsCount(t *testing.T) {
	// setup
	ctx := context.Background()
	store := fakestore.NewFakeCirculationStore()
	borrowHandler := borrowbookcopy.NewCommandHandler(store)
	returnHandler := returnbookcopy.NewCommandHandler(store)

	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	givenBookInInventory(t, store, bookID, 3, 2)

	borrowCmd := borrowbookcopy.BuildCommand(bookID, memberID, fakeClock.Add(14*24*time.Hour), fakeClock)
	borrowResult, _, err := borrowHandler.Handle(ctx, borrowCmd)
	assert.NoError(t, err, "Borrow should succeed")

	returnCmd := returnbookcopy.BuildCommand(bookID, memberID, fakeClock.Add(7*24*time.Hour))

	// act
	result, handlerResult, err := returnHandler.Handle(ctx, returnCmd)

	// assert
	assert.NoError(t, err, "Return should succeed")
	assert.False(t, handlerResult.Idempotent, "A return closes a loan, it is never idempotent")
	assert.Equal(t, borrowResult.LoanID, result.LoanID, "Result should report the closed loan")
	assert.Equal(t, 2, result.AvailableCopies, "Result should report the incremented count")
	assert.False(t, result.ReturnDate.IsZero(), "Result should carry the return date")

	record, loadErr := store.LoadBook(ctx, bookID.String())
	assert.NoError(t, loadErr, "Book should still be loadable")
	assert.Equal(t, 2, record.AvailableCopies, "Stored count should be incremented")

	_, hasOpenLoan, findErr := store.FindOpenLoan(ctx, bookID.String(), memberID.String())
	assert.NoError(t, findErr, "Open loan lookup should succeed")
	assert.False(t, hasOpenLoan, "The loan should be closed")

	assert.Equal(t, 2, store.AuditEntryCount(), "Borrow and return should each write one audit entry")
}

func Test_CommandHandler_Handle_ReturnsError_WhenMemberHasNoOpenLoan(t *testing.T) {
	// setup
	ctx := context.Background()
	store := fakestore.NewFakeCirculationStore()
	handler := returnbookcopy.NewCommandHandler(store)

	// arrange
	bookID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	givenBookInInventory(t, store, bookID, 3, 3)

	command := returnbookcopy.BuildCommand(bookID, uuid.New(), fakeClock)

	// act
	_, handlerResult, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrNoOpenLoan, "Expected no-open-loan error")
	assert.Equal(t, 1, handlerResult.RetryAttempts, "Business errors should not be retried")
	assert.Equal(t, 0, store.AuditEntryCount(), "No audit entry should be written")
}

func Test_CommandHandler_Handle_ReturnsError_WhenBookNotInInventory(t *testing.T) {
	// setup
	ctx := context.Background()
	store := fakestore.NewFakeCirculationStore()
	handler := returnbookcopy.NewCommandHandler(store)

	// arrange
	fakeClock := time.Unix(0, 0).UTC()
	command := returnbookcopy.BuildCommand(uuid.New(), uuid.New(), fakeClock)

	// act
	_, _, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotInInventory, "Expected not-in-inventory error")
}

func Test_CommandHandler_Handle_NeverRetriesInventoryInconsistency(t *testing.T) {
	// setup
	ctx := context.Background()
	store := fakestore.NewFakeCirculationStore()
	handler := returnbookcopy.NewCommandHandler(store)

	// arrange - a corrupted store state: every copy is on the shelf, yet an
	// open loan exists. Closing it would push the count above the total.
	bookID := uuid.New()
	memberID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	givenBookInInventory(t, store, bookID, 3, 3)

	loanRecord, err := circulationstore.BuildOpenLoanRecord(
		uuid.New().String(),
		bookID.String(),
		memberID.String(),
		fakeClock,
		fakeClock.Add(14*24*time.Hour),
	)
	assert.NoError(t, err, "error in arranging test data")
	store.SeedLoan(loanRecord)

	command := returnbookcopy.BuildCommand(bookID, memberID, fakeClock.Add(7*24*time.Hour))

	// act
	_, handlerResult, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, circulationstore.ErrInventoryInconsistent, "Expected inventory-inconsistent error")
	assert.Equal(t, 1, handlerResult.RetryAttempts, "An inconsistency must fail fast without retries")
	assert.Equal(t, "inventory_inconsistent", handlerResult.LastErrorType, "Error type should be classified")

	record, loadErr := store.LoadBook(ctx, bookID.String())
	assert.NoError(t, loadErr, "Book should still be loadable")
	assert.Equal(t, 3, record.AvailableCopies, "A rejected commit must leave the count untouched")
}

func givenBookInInventory(t testing.TB, store *fakestore.FakeCirculationStore, bookID uuid.UUID, totalCopies int, availableCopies int) {
	t.Helper()

	record, err := circulationstore.BuildBookRecord(
		bookID.String(),
		"The Go Programming Language",
		totalCopies,
		availableCopies,
		true,
		1,
	)
	assert.NoError(t, err, "error in arranging test data")

	store.SeedBook(record)
}
