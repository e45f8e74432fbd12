package postgresengine

import (
	"github.com/bookhive/circulation-go/circulationstore"
)

// Option defines a functional option for configuring CirculationStore.
type Option func(*CirculationStore) error

// WithBooksTableName sets the inventory table name for the CirculationStore.
func WithBooksTableName(tableName string) Option {
	return func(cs *CirculationStore) error {
		if tableName == "" {
			return circulationstore.ErrEmptyTableNameSupplied
		}

		cs.booksTableName = tableName

		return nil
	}
}

// WithLoansTableName sets the ledger table name for the CirculationStore.
func WithLoansTableName(tableName string) Option {
	return func(cs *CirculationStore) error {
		if tableName == "" {
			return circulationstore.ErrEmptyTableNameSupplied
		}

		cs.loansTableName = tableName

		return nil
	}
}

// WithAuditTableName sets the audit-trail table name for the CirculationStore.
func WithAuditTableName(tableName string) Option {
	return func(cs *CirculationStore) error {
		if tableName == "" {
			return circulationstore.ErrEmptyTableNameSupplied
		}

		cs.auditTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the CirculationStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: commit outcomes, durations, concurrency conflicts (production-safe)
// Warn level: non-critical issues like cleanup failures
// Error level: critical failures that cause operation failures.
func WithLogger(logger circulationstore.Logger) Option {
	return func(cs *CirculationStore) error {
		cs.logger = logger
		return nil
	}
}
