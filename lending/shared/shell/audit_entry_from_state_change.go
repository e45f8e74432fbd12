package shell

import (
	"encoding/json"
	"errors"

	"github.com/bookhive/circulation-go/circulationstore"
	"github.com/bookhive/circulation-go/lending/core"
)

// AuditEntryFrom converts a StateChange into the audit entry committed in the
// same transaction as the change itself. The change struct is the payload; the
// indexed columns are lifted out per concrete type.
func AuditEntryFrom(change core.StateChange) (circulationstore.AuditEntry, error) {
	payloadJSON, err := json.Marshal(change)
	if err != nil {
		return circulationstore.AuditEntry{}, errors.Join(ErrMarshalingStateChangeFailed, err)
	}

	var bookID, memberID, loanID string

	switch c := change.(type) {
	case core.BookCopyBorrowed:
		bookID, memberID, loanID = c.BookID, c.MemberID, c.LoanID
	case core.BookCopyReturned:
		bookID, memberID, loanID = c.BookID, c.MemberID, c.LoanID
	case core.BookAddedToInventory:
		bookID = c.BookID
	case core.BookRemovedFromInventory:
		bookID = c.BookID
	default:
		return circulationstore.AuditEntry{}, ErrUnknownAuditEntryType
	}

	entry, err := circulationstore.BuildAuditEntry(
		change.IsChangeType(),
		bookID,
		memberID,
		loanID,
		payloadJSON,
		change.HasOccurredAt(),
	)
	if err != nil {
		return circulationstore.AuditEntry{}, errors.Join(ErrMarshalingStateChangeFailed, err)
	}

	return entry, nil
}
