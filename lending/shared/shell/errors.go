package shell

import "errors"

var (
	// ErrIdempotentOperation is a sentinel error to indicate an idempotent operation that should be recorded in metrics.
	ErrIdempotentOperation = errors.New("idempotent operation - no state change needed")

	// ErrUnknownAuditEntryType is returned when an audit entry type has no registered state change.
	ErrUnknownAuditEntryType = errors.New("unknown audit entry type")

	// ErrUnmarshalingAuditPayloadFailed is returned when an audit payload cannot be decoded.
	ErrUnmarshalingAuditPayloadFailed = errors.New("unmarshaling audit payload failed")

	// ErrMarshalingStateChangeFailed is returned when a state change cannot be encoded for the audit trail.
	ErrMarshalingStateChangeFailed = errors.New("marshaling state change failed")
)
