package shell

import (
	"context"

	"github.com/bookhive/circulation-go/circulationstore"
)

// CirculationStore defines the storage operations the feature slices depend on.
// This abstraction is shared across slices so the observability wrappers and the
// in-memory test double can stand in for the Postgres engine without changing
// any handler code.
type CirculationStore interface {
	LoadBook(ctx context.Context, bookID string) (circulationstore.BookRecord, error)
	FindOpenLoan(ctx context.Context, bookID string, memberID string) (circulationstore.LoanRecord, bool, error)
	LoansForMember(ctx context.Context, memberID string) (circulationstore.LoanRecords, error)
	AuditTrailForBook(ctx context.Context, bookID string) (circulationstore.AuditEntries, error)
	CommitBorrow(ctx context.Context, book circulationstore.BookRecord, loan circulationstore.LoanRecord, audit circulationstore.AuditEntry) error
	CommitReturn(ctx context.Context, book circulationstore.BookRecord, loan circulationstore.LoanRecord, audit circulationstore.AuditEntry) error
	CommitBookAdded(ctx context.Context, book circulationstore.BookRecord, audit circulationstore.AuditEntry) error
	CommitBookRemoved(ctx context.Context, book circulationstore.BookRecord, audit circulationstore.AuditEntry) error
}

// Command represents the contract for all command types in the application.
// Each command encapsulates the intent and parameters needed to execute a
// specific circulation operation. The CommandType method enables polymorphic
// handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic.
// Handlers orchestrate the complete command workflow: loading state, deciding, and committing.
// Implementations should focus purely on business logic without observability concerns; this
// interface is designed to be wrapped with observability decorators for complete functionality.
// Handlers return HandlerResult containing business outcomes (idempotency) and execution metadata (retry info).
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// CoreCommandHandlerWithResult defines the contract for command handlers whose
// use case returns a snapshot of the committed state alongside the execution
// metadata. Borrow and Return use this shape so callers get the loan they acted
// on without issuing a follow-up query.
type CoreCommandHandlerWithResult[C Command, R any] interface {
	Handle(ctx context.Context, command C) (R, HandlerResult, error)
}

// CommandHandler defines the contract for command handlers that return only errors (compatibility interface).
// Typically implemented by wrapper types that convert (HandlerResult, error) to just error.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) error
}

// Query represents the contract for all query types in the application.
// Each query encapsulates the intent and parameters needed to retrieve a
// specific projection over the loan ledger.
type Query interface {
	QueryType() string
}

// CoreQueryHandler defines the contract for components that process queries with pure business logic.
// Handlers orchestrate the complete query workflow: reading ledger records and projecting.
// The generic parameters Q and R ensure type safety between queries and their corresponding results.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
