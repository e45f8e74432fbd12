package returnbookcopy

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
	FindOpenLoan(ctx context.Context, bookID string, memberID string) (circulationstore.LoanRecord, bool, error)
	CommitReturn(
		ctx context.Context,
		book circulationstore.BookRecord,
		loan circulationstore.LoanRecord,
		audit circulationstore.AuditEntry,
	) error
}

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
// It handles the core workflow: Load -> Decide -> Commit.
// External wrappers handle all observability concerns.
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
// Returns the return snapshot plus HandlerResult containing business outcomes
// and execution metadata.
//
// Only concurrency conflicts rerun the load-decide-commit sequence. A detected
// inventory inconsistency fails fast: retrying cannot repair bad data.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Result, shell.HandlerResult, error) {
	var snapshot Result

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		result, execErr := h.executeCommand(retryCtx, command)
		snapshot = result

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return Result{}, shell.NewErrorResult(retryMetrics), err
	}

	return snapshot, shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (Result, error) {
	ctx = circulationstore.WithStrongConsistency(ctx)

	// Load phase
	s, loadErr := h.loadState(ctx, command)
	if loadErr != nil {
		return Result{}, loadErr
	}

	// Business logic phase - delegate to pure core function
	result := Decide(s, command)

	if decideErr := result.HasError(); decideErr != nil {
		return Result{}, decideErr
	}

	// Commit phase - loan close, increment and audit entry in one transaction
	change := result.Change.(core.BookCopyReturned)

	closedLoan, buildErr := shell.ClosedLoanRecordFrom(s.OpenLoan, change)
	if buildErr != nil {
		return Result{}, buildErr
	}

	auditEntry, auditErr := shell.AuditEntryFrom(change)
	if auditErr != nil {
		return Result{}, auditErr
	}

	bookRecord, recordErr := shell.BookRecordWithVersionFrom(s.Book)
	if recordErr != nil {
		return Result{}, recordErr
	}

	if commitErr := h.store.CommitReturn(ctx, bookRecord, closedLoan, auditEntry); commitErr != nil {
		return Result{}, commitErr
	}

	return Result{
		LoanID:            s.OpenLoan.ID,
		BookID:            s.OpenLoan.BookID,
		MemberID:          s.OpenLoan.MemberID,
		Title:             s.Book.Title,
		BorrowDate:        s.OpenLoan.BorrowDate,
		ClaimedReturnDate: s.OpenLoan.ClaimedReturnDate,
		ReturnDate:        change.ReturnDate,
		AvailableCopies:   s.Book.AvailableCopies + 1,
	}, nil
}

// loadState loads the book and the member's open loan for the decision.
func (h CommandHandler) loadState(ctx context.Context, command Command) (State, error) {
	s := State{}

	bookRecord, err := h.store.LoadBook(ctx, command.BookID.String())
	switch {
	case err == nil:
		s.Book = shell.BookFrom(bookRecord)
		s.BookExists = true
	case errors.Is(err, circulationstore.ErrBookNotFound):
		s.BookExists = false
	default:
		return State{}, err
	}

	loanRecord, hasOpenLoan, err := h.store.FindOpenLoan(ctx, command.BookID.String(), command.MemberID.String())
	if err != nil {
		return State{}, err
	}

	if hasOpenLoan {
		s.OpenLoan = shell.LoanFrom(loanRecord)
		s.HasOpenLoan = true
	}

	return s, nil
}
