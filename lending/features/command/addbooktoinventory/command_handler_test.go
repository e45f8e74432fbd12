package addbooktoinventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/circulationstore"
	"github.com/bookhive/circulation-go/lending/features/command/addbooktoinventory"
	"github.com/bookhive/circulation-go/lending/shared/shell"
	"github.com/bookhive/circulation-go/testutil/circulationstore/fakestore"
)

func Test_CommandHandler_Handle_RegistersBook_WhenBookIsNew(t *testing.T) {
	// setup
	ctx := context.Background()
	store := fakestore.NewFakeCirculationStore()
	handler := addbooktoinventory.NewCommandHandler(store)

	// arrange
	bookID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	command := addbooktoinventory.BuildCommand(bookID, "The Go Programming Language", 4, fakeClock)

	// act
	handlerResult, err := handler.Handle(ctx, command)

	// assert
	assert.NoError(t, err, "Should register a new book")
	assert.False(t, handlerResult.Idempotent, "A fresh registration should not be idempotent")

	record, loadErr := store.LoadBook(ctx, bookID.String())
	assert.NoError(t, loadErr, "Book should be loadable after registration")
	assert.Equal(t, "The Go Programming Language", record.Title, "Stored title should match")
	assert.Equal(t, 4, record.TotalCopies, "Stored total should match")
	assert.Equal(t, 4, record.AvailableCopies, "Every copy should start on the shelf")
	assert.True(t, record.Active, "A registered book should be in circulation")
	assert.Equal(t, 1, store.AuditEntryCount(), "Exactly one audit entry should be written")
}

func Test_CommandHandler_Handle_IsIdempotent_WhenBookAlreadyRegistered(t *testing.T) {
	// setup
	ctx := context.Background()
	store := fakestore.NewFakeCirculationStore()
	handler := addbooktoinventory.NewCommandHandler(store)

	// arrange
	bookID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	command := addbooktoinventory.BuildCommand(bookID, "The Go Programming Language", 4, fakeClock)

	_, err := handler.Handle(ctx, command)
	assert.NoError(t, err, "First registration should succeed")

	// act
	handlerResult, err := handler.Handle(ctx, command)

	// assert
	assert.NoError(t, err, "Repeated registration should not fail")
	assert.True(t, handlerResult.Idempotent, "Repeated registration should be idempotent")
	assert.Equal(t, 1, store.AuditEntryCount(), "No second audit entry should be written")
}

func Test_CommandHandler_Handle_RetriesAndDecidesAgainstWinner_AfterLostInsertRace(t *testing.T) {
	// setup
	ctx := context.Background()
	store := fakestore.NewFakeCirculationStore()
	handler := addbooktoinventory.NewCommandHandler(
		store,
		addbooktoinventory.WithRetryOptions(
			shell.WithBaseDelay(time.Millisecond),
			shell.WithJitterFactor(0),
		),
	)

	// arrange - the commit loses the insert race once, the retry then
	// re-decides against whatever row won
	bookID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	store.FailCommitsWith(circulationstore.ErrConcurrencyConflict, 1)

	command := addbooktoinventory.BuildCommand(bookID, "The Go Programming Language", 4, fakeClock)

	// act
	handlerResult, err := handler.Handle(ctx, command)

	// assert
	assert.NoError(t, err, "Registration should succeed after the retry")
	assert.Equal(t, 2, handlerResult.RetryAttempts, "Expected one conflict and one successful attempt")

	_, loadErr := store.LoadBook(ctx, bookID.String())
	assert.NoError(t, loadErr, "Book should be loadable after registration")
}
