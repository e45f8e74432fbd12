package core

// Book is an immutable snapshot of a book's inventory state, captured together
// with the optimistic-lock version the commit must be conditional on.
type Book struct {
	ID              BookIDString
	Title           string
	TotalCopies     int
	CopiesTracked   bool
	AvailableCopies int
	Active          bool
	Version         uint
}

// HasAvailableCopy reports whether at least one copy can be lent out.
func (b Book) HasAvailableCopy() bool {
	return b.AvailableCopies > 0
}

// InCirculation reports whether the book is active in the inventory.
// Removed books keep their rows so open loans can still be returned.
func (b Book) InCirculation() bool {
	return b.Active
}
