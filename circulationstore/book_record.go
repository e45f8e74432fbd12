package circulationstore

import (
	"errors"
	"time"
)

var ErrNegativeCopyCount = errors.New("copy counts must not be negative")
var ErrAvailableExceedsTotal = errors.New("available copies must not exceed total copies")

// BookRecord is a DTO (data transfer object) representing one row of the inventory store.
//
// It is built on scalars to be completely agnostic of the implementation of domain types in the client code.
// The Version field carries the optimistic-lock version the row had when it was read; commits are
// conditional on it, so a BookRecord must be passed back unmodified to the engine's commit methods.
//
// While its properties are exported, it should only be constructed with the supplied factory methods:
//   - BuildBookRecord
//   - BuildUntrackedBookRecord
type BookRecord struct {
	ID              string
	Title           string
	TotalCopies     int
	CopiesTracked   bool
	AvailableCopies int
	Active          bool
	Version         VersionUint
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BuildBookRecord is a factory method for BookRecord with a tracked total-copy count.
//
// Returns an error if either count is negative or availableCopies exceeds totalCopies,
// the invariant the whole store exists to protect.
func BuildBookRecord(
	id string,
	title string,
	totalCopies int,
	availableCopies int,
	active bool,
	version VersionUint,
) (BookRecord, error) {

	if totalCopies < 0 || availableCopies < 0 {
		return BookRecord{}, ErrNegativeCopyCount
	}

	if availableCopies > totalCopies {
		return BookRecord{}, ErrAvailableExceedsTotal
	}

	return BookRecord{
		ID:              id,
		Title:           title,
		TotalCopies:     totalCopies,
		CopiesTracked:   true,
		AvailableCopies: availableCopies,
		Active:          active,
		Version:         version,
	}, nil
}

// BuildUntrackedBookRecord is a factory method for BookRecord without a total-copy count.
//
// Untracked books still have an available-copy count, it is only unbounded above.
// Returns an error if availableCopies is negative.
func BuildUntrackedBookRecord(
	id string,
	title string,
	availableCopies int,
	active bool,
	version VersionUint,
) (BookRecord, error) {

	if availableCopies < 0 {
		return BookRecord{}, ErrNegativeCopyCount
	}

	return BookRecord{
		ID:              id,
		Title:           title,
		CopiesTracked:   false,
		AvailableCopies: availableCopies,
		Active:          active,
		Version:         version,
	}, nil
}
