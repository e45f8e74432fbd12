package removebookfrominventory

import (
	"context"
	"errors"

	"github.com/bookhive/circulation-go/circulationstore"
	"github.com/bookhive/circulation-go/lending/core"
	"github.com/bookhive/circulation-go/lending/shared/shell"
)

// CirculationStore defines the interface needed by the CommandHandler for store operations.
type CirculationStore interface {
	LoadBook(ctx context.Context, bookID string) (circulationstore.BookRecord, error)
	CommitBookRemoved(ctx context.Context, book circulationstore.BookRecord, audit circulationstore.AuditEntry) error
}

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
type CommandHandler struct {
	store        CirculationStore
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(store CirculationStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		store: store,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the complete command processing workflow with retry logic.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	var isIdempotent bool

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		idempotent, execErr := h.executeCommand(retryCtx, command)
		isIdempotent = idempotent

		return execErr
	}, h.retryOptions...)

	if isIdempotent {
		return shell.NewIdempotentResult(retryMetrics), err
	}

	if err != nil {
		return shell.NewErrorResult(retryMetrics), err
	}

	return shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (bool, error) {
	ctx = circulationstore.WithStrongConsistency(ctx)

	s := State{}

	bookRecord, loadErr := h.store.LoadBook(ctx, command.BookID.String())
	switch {
	case loadErr == nil:
		s.Book = shell.BookFrom(bookRecord)
		s.BookExists = true
	case errors.Is(loadErr, circulationstore.ErrBookNotFound):
		s.BookExists = false
	default:
		return false, loadErr
	}

	result := Decide(s, command)

	if decideErr := result.HasError(); decideErr != nil {
		return false, decideErr
	}

	if !result.HasChangeToCommit() {
		return true, nil // Idempotent - the book is already out of circulation
	}

	change := result.Change.(core.BookRemovedFromInventory)

	auditEntry, auditErr := shell.AuditEntryFrom(change)
	if auditErr != nil {
		return false, auditErr
	}

	record, recordErr := shell.BookRecordWithVersionFrom(s.Book)
	if recordErr != nil {
		return false, recordErr
	}

	if commitErr := h.store.CommitBookRemoved(ctx, record, auditEntry); commitErr != nil {
		return false, commitErr
	}

	return false, nil
}
