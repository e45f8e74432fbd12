package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/bookhive/circulation-go/circulationstore"
	"github.com/bookhive/circulation-go/lending/core"
)

// StateChangesFrom converts multiple audit entries back into typed state changes.
func StateChangesFrom(entries circulationstore.AuditEntries) ([]core.StateChange, error) {
	changes := make([]core.StateChange, 0, len(entries))

	for _, entry := range entries {
		change, err := StateChangeFrom(entry)
		if err != nil {
			return nil, err
		}

		changes = append(changes, change)
	}

	return changes, nil
}

// StateChangeFrom converts an audit entry to its corresponding StateChange.
func StateChangeFrom(entry circulationstore.AuditEntry) (core.StateChange, error) {
	switch entry.EntryType {
	case core.BookCopyBorrowedChangeType:
		return unmarshalAuditPayload[core.BookCopyBorrowed](entry.PayloadJSON)

	case core.BookCopyReturnedChangeType:
		return unmarshalAuditPayload[core.BookCopyReturned](entry.PayloadJSON)

	case core.BookAddedToInventoryChangeType:
		return unmarshalAuditPayload[core.BookAddedToInventory](entry.PayloadJSON)

	case core.BookRemovedFromInventoryChangeType:
		return unmarshalAuditPayload[core.BookRemovedFromInventory](entry.PayloadJSON)
	}

	return nil, errors.Join(ErrUnmarshalingAuditPayloadFailed, ErrUnknownAuditEntryType)
}

func unmarshalAuditPayload[C core.StateChange](payloadJSON []byte) (core.StateChange, error) {
	payload := new(C)

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload); err != nil {
		return nil, errors.Join(ErrUnmarshalingAuditPayloadFailed, err)
	}

	return *payload, nil
}
