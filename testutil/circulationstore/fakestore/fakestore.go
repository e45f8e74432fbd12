package fakestore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bookhive/circulation-go/circulationstore"
)

// FakeCirculationStore is a mutex-guarded in-memory implementation of the
// circulation store. Its commit methods reproduce the engine's optimistic
// concurrency semantics: every write is conditional on the book version the
// caller read, and a lost race yields circulationstore.ErrConcurrencyConflict.
type FakeCirculationStore struct {
	mu    sync.Mutex
	books map[string]circulationstore.BookRecord
	loans map[string]circulationstore.LoanRecord
	audit []circulationstore.AuditEntry

	injectedErr       error
	injectedErrBudget int
}

// NewFakeCirculationStore creates an empty in-memory store.
func NewFakeCirculationStore() *FakeCirculationStore {
	return &FakeCirculationStore{
		books: make(map[string]circulationstore.BookRecord),
		loans: make(map[string]circulationstore.LoanRecord),
	}
}

// FailCommitsWith makes the next "times" commit calls fail with err before
// touching any state. Used to test retry behavior.
func (f *FakeCirculationStore) FailCommitsWith(err error, times int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.injectedErr = err
	f.injectedErrBudget = times
}

// SeedBook places a book record into the store, bypassing commit checks.
func (f *FakeCirculationStore) SeedBook(record circulationstore.BookRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.books[record.ID] = record
}

// SeedLoan places a loan record into the store, bypassing commit checks.
func (f *FakeCirculationStore) SeedLoan(record circulationstore.LoanRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.loans[record.ID] = record
}

// AuditEntryCount reports how many audit entries have been written.
func (f *FakeCirculationStore) AuditEntryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.audit)
}

// LoadBook returns the book record or circulationstore.ErrBookNotFound.
func (f *FakeCirculationStore) LoadBook(_ context.Context, bookID string) (circulationstore.BookRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, ok := f.books[bookID]
	if !ok {
		return circulationstore.BookRecord{}, circulationstore.ErrBookNotFound
	}

	return record, nil
}

// FindOpenLoan returns the member's open loan for the book, if any.
func (f *FakeCirculationStore) FindOpenLoan(_ context.Context, bookID string, memberID string) (circulationstore.LoanRecord, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var found circulationstore.LoanRecord
	var hasFound bool

	for _, loan := range f.loans {
		if loan.BookID != bookID || loan.MemberID != memberID || loan.Returned {
			continue
		}

		if !hasFound || loan.BorrowDate.After(found.BorrowDate) {
			found = loan
			hasFound = true
		}
	}

	return found, hasFound, nil
}

// LoansForMember returns all loans of the member ordered by borrow date.
func (f *FakeCirculationStore) LoansForMember(_ context.Context, memberID string) (circulationstore.LoanRecords, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	records := make(circulationstore.LoanRecords, 0)
	for _, loan := range f.loans {
		if loan.MemberID == memberID {
			records = append(records, loan)
		}
	}

	slices.SortFunc(records, func(a, b circulationstore.LoanRecord) int {
		return a.BorrowDate.Compare(b.BorrowDate)
	})

	return records, nil
}

// AuditTrailForBook returns the audit entries written for the book in commit order.
func (f *FakeCirculationStore) AuditTrailForBook(_ context.Context, bookID string) (circulationstore.AuditEntries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := make(circulationstore.AuditEntries, 0)
	for _, entry := range f.audit {
		if entry.BookID == bookID {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// CommitBorrow decrements the available count and opens the loan, conditional
// on the book version the caller read and at least one available copy.
func (f *FakeCirculationStore) CommitBorrow(
	_ context.Context,
	book circulationstore.BookRecord,
	loan circulationstore.LoanRecord,
	audit circulationstore.AuditEntry,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.consumeInjectedError(); err != nil {
		return err
	}

	current, ok := f.books[book.ID]
	if !ok || !current.Active || current.Version != book.Version || current.AvailableCopies < 1 {
		return circulationstore.ErrConcurrencyConflict
	}

	current.AvailableCopies--
	current.Version++
	current.UpdatedAt = time.Now()
	f.books[book.ID] = current

	f.loans[loan.ID] = loan
	f.audit = append(f.audit, audit)

	return nil
}

// CommitReturn closes the loan and increments the available count, conditional
// on the book version and the loan still being open. An increment that would
// push the available count above a tracked total fails with
// circulationstore.ErrInventoryInconsistent and leaves the state untouched.
func (f *FakeCirculationStore) CommitReturn(
	_ context.Context,
	book circulationstore.BookRecord,
	loan circulationstore.LoanRecord,
	audit circulationstore.AuditEntry,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.consumeInjectedError(); err != nil {
		return err
	}

	currentLoan, ok := f.loans[loan.ID]
	if !ok || currentLoan.Returned {
		return circulationstore.ErrConcurrencyConflict
	}

	current, ok := f.books[book.ID]
	if !ok || current.Version != book.Version {
		return circulationstore.ErrConcurrencyConflict
	}

	if current.CopiesTracked && current.AvailableCopies+1 > current.TotalCopies {
		return circulationstore.ErrInventoryInconsistent
	}

	current.AvailableCopies++
	current.Version++
	current.UpdatedAt = time.Now()
	f.books[book.ID] = current

	f.loans[loan.ID] = loan
	f.audit = append(f.audit, audit)

	return nil
}

// CommitBookAdded inserts the book if no row exists yet. A lost insert race
// fails with circulationstore.ErrConcurrencyConflict, the retry will then
// decide idempotently against the winner's row.
func (f *FakeCirculationStore) CommitBookAdded(
	_ context.Context,
	book circulationstore.BookRecord,
	audit circulationstore.AuditEntry,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.consumeInjectedError(); err != nil {
		return err
	}

	if _, exists := f.books[book.ID]; exists {
		return circulationstore.ErrConcurrencyConflict
	}

	book.CreatedAt = time.Now()
	book.UpdatedAt = book.CreatedAt
	f.books[book.ID] = book
	f.audit = append(f.audit, audit)

	return nil
}

// CommitBookRemoved deactivates the book, conditional on the version the
// caller read and the book still being active.
func (f *FakeCirculationStore) CommitBookRemoved(
	_ context.Context,
	book circulationstore.BookRecord,
	audit circulationstore.AuditEntry,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.consumeInjectedError(); err != nil {
		return err
	}

	current, ok := f.books[book.ID]
	if !ok || !current.Active || current.Version != book.Version {
		return circulationstore.ErrConcurrencyConflict
	}

	current.Active = false
	current.Version++
	current.UpdatedAt = time.Now()
	f.books[book.ID] = current
	f.audit = append(f.audit, audit)

	return nil
}

// consumeInjectedError must be called with the mutex held.
func (f *FakeCirculationStore) consumeInjectedError() error {
	if f.injectedErrBudget <= 0 {
		return nil
	}

	f.injectedErrBudget--

	return f.injectedErr
}
