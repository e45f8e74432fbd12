package circulationstore

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidAuditPayloadJSON = errors.New("audit payload json is not valid")

// AuditEntries is an alias type for a slice of AuditEntry.
type AuditEntries = []AuditEntry

// AuditEntry is a DTO for one row of the append-only circulation audit trail.
//
// Engines write one entry per successful commit, inside the same transaction as the
// inventory and ledger mutations, so the trail doubles as an external witness that
// both effects of a borrow or return were applied atomically.
//
// While its properties are exported, it should only be constructed with the supplied
// factory method BuildAuditEntry.
type AuditEntry struct {
	EntryType   string
	BookID      string
	MemberID    string
	LoanID      string
	PayloadJSON []byte
	OccurredAt  time.Time
}

// BuildAuditEntry is a factory method for AuditEntry.
//
// Returns an error if payloadJSON is not valid JSON.
func BuildAuditEntry(
	entryType string,
	bookID string,
	memberID string,
	loanID string,
	payloadJSON []byte,
	occurredAt time.Time,
) (AuditEntry, error) {

	if !json.Valid(payloadJSON) {
		return AuditEntry{}, ErrInvalidAuditPayloadJSON
	}

	return AuditEntry{
		EntryType:   entryType,
		BookID:      bookID,
		MemberID:    memberID,
		LoanID:      loanID,
		PayloadJSON: payloadJSON,
		OccurredAt:  occurredAt,
	}, nil
}
