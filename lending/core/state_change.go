package core

import (
	"time"
)

// ChangeTypeString represents a state change type identifier
type ChangeTypeString = string

// StateChange represents a business fact that a successful decision wants
// committed. The shell translates it into the atomic commit for the
// circulation store and into the audit trail entry recorded alongside.
type StateChange interface {
	// IsChangeType returns the string identifier for this change type.
	IsChangeType() string

	// HasOccurredAt returns when this change occurred.
	HasOccurredAt() time.Time
}
