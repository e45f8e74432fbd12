package removebookfrominventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/circulationstore"
	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/features/command/borrowbookcopy"
	"github.com/bookhive/circulation-go/lending/features/command/removebookfrominventory"
	"github.com/bookhive/circulation-go/testutil/circulationstore/fakestore"
)

func Test_CommandHandler_Handle_TakesBookOutOfCirculation(t *testing.T) {
	// setup
	ctx := context.Background()
	store := fakestore.NewFakeCirculationStore()
	removeHandler := removebookfrominventory.NewCommandHandler(store)
	borrowHandler := borrowbookcopy.NewCommandHandler(store)

	// arrange
	bookID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	givenBookInInventory(t, store, bookID, 3, 3)

	command := removebookfrominventory.BuildCommand(bookID, fakeClock)

	// act
	handlerResult, err := removeHandler.Handle(ctx, command)

	// assert
	assert.NoError(t, err, "Should take the book out of circulation")
	assert.False(t, handlerResult.Idempotent, "A fresh removal should not be idempotent")

	record, loadErr := store.LoadBook(ctx, bookID.String())
	assert.NoError(t, loadErr, "Removed books stay loadable")
	assert.False(t, record.Active, "The book should be out of circulation")
	assert.Equal(t, 1, store.AuditEntryCount(), "Exactly one audit entry should be written")

	// a removed book can no longer be borrowed
	borrowCmd := borrowbookcopy.BuildCommand(bookID, uuid.New(), fakeClock.Add(14*24*time.Hour), fakeClock)
	_, _, borrowErr := borrowHandler.Handle(ctx, borrowCmd)
	assert.ErrorIs(t, borrowErr, core.ErrBookNotInCirculation, "Borrowing a removed book should fail")
}

func Test_CommandHandler_Handle_IsIdempotent_WhenBookAlreadyRemoved(t *testing.T) {
	// setup
	ctx := context.Background()
	store := fakestore.NewFakeCirculationStore()
	handler := removebookfrominventory.NewCommandHandler(store)

	// arrange
	bookID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	givenBookInInventory(t, store, bookID, 3, 3)

	command := removebookfrominventory.BuildCommand(bookID, fakeClock)

	_, err := handler.Handle(ctx, command)
	assert.NoError(t, err, "First removal should succeed")

	// act
	handlerResult, err := handler.Handle(ctx, command)

	// assert
	assert.NoError(t, err, "Repeated removal should not fail")
	assert.True(t, handlerResult.Idempotent, "Repeated removal should be idempotent")
	assert.Equal(t, 1, store.AuditEntryCount(), "No second audit entry should be written")
}

func Test_CommandHandler_Handle_ReturnsError_WhenBookWasNeverAdded(t *testing.T) {
	// setup
	ctx := context.Background()
	store := fakestore.NewFakeCirculationStore()
	handler := removebookfrominventory.NewCommandHandler(store)

	// arrange
	fakeClock := time.Unix(0, 0).UTC()
	command := removebookfrominventory.BuildCommand(uuid.New(), fakeClock)

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotInInventory, "Expected not-in-inventory error")
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
