package shell_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/circulationstore"
	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/shared/shell"
)

func Test_AuditEntryFrom_LiftsIndexedColumnsFromBorrowChange(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	change := core.BuildBookCopyBorrowed(bookID, memberID, fakeClock, fakeClock.Add(14*24*time.Hour))

	// act
	entry, err := shell.AuditEntryFrom(change)

	// assert
	assert.NoError(t, err, "Should build an audit entry from a borrow change")
	assert.Equal(t, core.BookCopyBorrowedChangeType, entry.EntryType, "Entry type should match the change type")
	assert.Equal(t, bookID.String(), entry.BookID, "Book ID should be lifted into its column")
	assert.Equal(t, memberID.String(), entry.MemberID, "Member ID should be lifted into its column")
	assert.Equal(t, change.LoanID, entry.LoanID, "Loan ID should be lifted into its column")
	assert.NotEmpty(t, entry.PayloadJSON, "The change itself should be the payload")
}

func Test_StateChangeFrom_RestoresBorrowChangeFromAuditEntry(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	original := core.BuildBookCopyBorrowed(bookID, memberID, fakeClock, fakeClock.Add(14*24*time.Hour))

	entry, err := shell.AuditEntryFrom(original)
	assert.NoError(t, err, "error in arranging test data")

	// act
	restored, err := shell.StateChangeFrom(entry)

	// assert
	assert.NoError(t, err, "Should restore the change from the audit entry")

	borrowed, ok := restored.(core.BookCopyBorrowed)
	assert.True(t, ok, "Restored change should have the original concrete type")
	assert.Equal(t, original, borrowed, "Restored change should equal the original")
}

func Test_StateChangeFrom_RestoresInventoryChangeWithoutLoanColumns(t *testing.T) {
	// arrange
	bookID := uuid.New()
	fakeClock := time.Unix(0, 0).UTC()

	original := core.BuildBookAddedToInventory(bookID, "The Go Programming Language", 4, fakeClock)

	entry, err := shell.AuditEntryFrom(original)
	assert.NoError(t, err, "error in arranging test data")
	assert.Empty(t, entry.MemberID, "Inventory changes have no member column")
	assert.Empty(t, entry.LoanID, "Inventory changes have no loan column")

	// act
	restored, err := shell.StateChangeFrom(entry)

	// assert
	assert.NoError(t, err, "Should restore the change from the audit entry")
	assert.Equal(t, original, restored, "Restored change should equal the original")
}

func Test_StateChangeFrom_ReturnsError_ForUnknownEntryType(t *testing.T) {
	// arrange
	entry, err := circulationstore.BuildAuditEntry(
		"SomethingHasHappened",
		uuid.New().String(),
		"",
		"",
		[]byte(`{}`),
		time.Unix(0, 0).UTC(),
	)
	assert.NoError(t, err, "error in arranging test data")

	// act
	_, err = shell.StateChangeFrom(entry)

	// assert
	assert.ErrorIs(t, err, shell.ErrUnknownAuditEntryType, "Expected unknown-entry-type error")
}
