package shell

import (
	"github.com/bookhive/circulation-go/circulationstore"
	"github.com/bookhive/circulation-go/lending/core"
)

// BookFrom converts a stored inventory record into the core snapshot a Decide
// function works with.
func BookFrom(record circulationstore.BookRecord) core.Book {
	return core.Book{
		ID:              record.ID,
		Title:           record.Title,
		TotalCopies:     record.TotalCopies,
		CopiesTracked:   record.CopiesTracked,
		AvailableCopies: record.AvailableCopies,
		Active:          record.Active,
		Version:         uint(record.Version),
	}
}

// LoanFrom converts a stored ledger record into the core loan snapshot.
func LoanFrom(record circulationstore.LoanRecord) core.Loan {
	return core.Loan{
		ID:                record.ID,
		BookID:            record.BookID,
		MemberID:          record.MemberID,
		BorrowDate:        record.BorrowDate,
		ClaimedReturnDate: record.ClaimedReturnDate,
		ReturnDate:        record.ReturnDate,
		Returned:          record.Returned,
	}
}

// OpenLoanRecordFrom builds the ledger record for a freshly decided borrow.
func OpenLoanRecordFrom(change core.BookCopyBorrowed) (circulationstore.LoanRecord, error) {
	return circulationstore.BuildOpenLoanRecord(
		change.LoanID,
		change.BookID,
		change.MemberID,
		change.BorrowDate,
		change.ClaimedReturnDate,
	)
}

// ClosedLoanRecordFrom builds the closed ledger record for a decided return,
// preserving the open loan's borrow and claimed return dates.
func ClosedLoanRecordFrom(loan core.Loan, change core.BookCopyReturned) (circulationstore.LoanRecord, error) {
	return circulationstore.BuildClosedLoanRecord(
		loan.ID,
		loan.BookID,
		loan.MemberID,
		loan.BorrowDate,
		loan.ClaimedReturnDate,
		change.ReturnDate,
	)
}

// BookRecordWithVersionFrom rebuilds the store record from a core snapshot,
// carrying the optimistic-lock version a commit must be conditional on.
func BookRecordWithVersionFrom(book core.Book) (circulationstore.BookRecord, error) {
	if !book.CopiesTracked {
		return circulationstore.BuildUntrackedBookRecord(
			book.ID,
			book.Title,
			book.AvailableCopies,
			book.Active,
			circulationstore.VersionUint(book.Version),
		)
	}

	return circulationstore.BuildBookRecord(
		book.ID,
		book.Title,
		book.TotalCopies,
		book.AvailableCopies,
		book.Active,
		circulationstore.VersionUint(book.Version),
	)
}

// BookRecordFrom builds the inventory record for a decided inventory addition.
// A freshly added book starts with every copy available at version 1.
func BookRecordFrom(change core.BookAddedToInventory) (circulationstore.BookRecord, error) {
	if !change.CopiesTracked {
		return circulationstore.BuildUntrackedBookRecord(
			change.BookID,
			change.Title,
			change.TotalCopies,
			true,
			1,
		)
	}

	return circulationstore.BuildBookRecord(
		change.BookID,
		change.Title,
		change.TotalCopies,
		change.TotalCopies,
		true,
		1,
	)
}
