package helper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/circulationstore"
	"github.com/bookhive/circulation-go/circulationstore/postgresengine"
	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/shared/shell"
)

func GivenUniqueID(t testing.TB) uuid.UUID {
	id, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return id
}

// GivenBookInInventory commits a book registration through the engine and
// returns the stored record, version 1 with every copy available.
func GivenBookInInventory(
	t testing.TB,
	ctx context.Context,
	cs postgresengine.CirculationStore,
	bookID uuid.UUID,
	title string,
	totalCopies int,
	fakeClock time.Time,
) circulationstore.BookRecord {
	t.Helper()

	change := core.BuildBookAddedToInventory(bookID, title, totalCopies, fakeClock)

	record, err := shell.BookRecordFrom(change)
	assert.NoError(t, err, "error in arranging test data")

	audit, err := shell.AuditEntryFrom(change)
	assert.NoError(t, err, "error in arranging test data")

	err = cs.CommitBookAdded(ctx, record, audit)
	assert.NoError(t, err, "error in arranging test data")

	stored, err := cs.LoadBook(ctx, bookID.String())
	assert.NoError(t, err, "error in arranging test data")

	return stored
}

// GivenBookCopyBorrowed commits a borrow through the engine against the given
// book record and returns the open loan record.
func GivenBookCopyBorrowed(
	t testing.TB,
	ctx context.Context,
	cs postgresengine.CirculationStore,
	book circulationstore.BookRecord,
	memberID uuid.UUID,
	fakeClock time.Time,
) circulationstore.LoanRecord {
	t.Helper()

	bookID, err := uuid.Parse(book.ID)
	assert.NoError(t, err, "error in arranging test data")

	change := core.BuildBookCopyBorrowed(bookID, memberID, fakeClock, fakeClock.Add(14*24*time.Hour))

	loan, err := shell.OpenLoanRecordFrom(change)
	assert.NoError(t, err, "error in arranging test data")

	audit, err := shell.AuditEntryFrom(change)
	assert.NoError(t, err, "error in arranging test data")

	err = cs.CommitBorrow(ctx, book, loan, audit)
	assert.NoError(t, err, "error in arranging test data")

	return loan
}
