package borrowbookcopy

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
	CommitBorrow(
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
		// retryOptions defaults to nil (will use retry defaults)
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the complete command processing workflow with retry logic.
// It delegates business logic to executeCommand and handles retry with exponential backoff.
// Returns the borrow snapshot plus HandlerResult containing business outcomes and execution metadata.
//
// Resilience: A concurrency conflict means another writer mutated the book row
// between load and commit; the whole load-decide-commit sequence reruns so the
// decision is always made against fresh state.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Result, shell.HandlerResult, error) {
	var isIdempotent bool
	var snapshot Result

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		result, idempotent, execErr := h.executeCommand(retryCtx, command)
		snapshot = result
		isIdempotent = idempotent

		return execErr
	}, h.retryOptions...)

	if isIdempotent {
		return snapshot, shell.NewIdempotentResult(retryMetrics), err
	}

	if err != nil {
		return Result{}, shell.NewErrorResult(retryMetrics), err
	}

	return snapshot, shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (Result, bool, error) {
	ctx = circulationstore.WithStrongConsistency(ctx)

	// Load phase
	s, loadErr := h.loadState(ctx, command)
	if loadErr != nil {
		return Result{}, false, loadErr
	}

	// Business logic phase - delegate to pure core function
	result := Decide(s, command)

	if decideErr := result.HasError(); decideErr != nil {
		return Result{}, false, decideErr
	}

	if !result.HasChangeToCommit() {
		// Idempotent - the member already holds this copy; report the existing loan
		return resultFrom(s.Book, s.OpenLoan, s.Book.AvailableCopies), true, nil
	}

	// Commit phase - decrement, loan insert and audit entry in one transaction
	change := result.Change.(core.BookCopyBorrowed)

	loanRecord, buildErr := shell.OpenLoanRecordFrom(change)
	if buildErr != nil {
		return Result{}, false, buildErr
	}

	auditEntry, auditErr := shell.AuditEntryFrom(change)
	if auditErr != nil {
		return Result{}, false, auditErr
	}

	bookRecord, recordErr := shell.BookRecordWithVersionFrom(s.Book)
	if recordErr != nil {
		return Result{}, false, recordErr
	}

	if commitErr := h.store.CommitBorrow(ctx, bookRecord, loanRecord, auditEntry); commitErr != nil {
		return Result{}, false, commitErr
	}

	committed := core.Loan{
		ID:                change.LoanID,
		BookID:            change.BookID,
		MemberID:          change.MemberID,
		BorrowDate:        change.BorrowDate,
		ClaimedReturnDate: change.ClaimedReturnDate,
	}

	return resultFrom(s.Book, committed, s.Book.AvailableCopies-1), false, nil
}

// loadState loads the book and the member's open loan for the decision.
// A missing book is a decision input, not an infrastructure error.
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
		s.MemberHoldsThisBook = true
	}

	return s, nil
}

func resultFrom(book core.Book, loan core.Loan, availableCopies int) Result {
	return Result{
		LoanID:            loan.ID,
		BookID:            loan.BookID,
		MemberID:          loan.MemberID,
		Title:             book.Title,
		BorrowDate:        loan.BorrowDate,
		ClaimedReturnDate: loan.ClaimedReturnDate,
		AvailableCopies:   availableCopies,
	}
}
