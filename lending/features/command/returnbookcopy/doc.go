// Package returnbookcopy implements the Return Book Copy use case.
//
// This feature closes the member's open loan for a book and puts the copy back
// on the shelf. Closing the loan and incrementing the available-copy count
// commit in one transaction. If the increment would push the available count
// past the tracked total, the store detects a data-integrity fault, rolls the
// whole transaction back and the handler surfaces it without retrying.
package returnbookcopy
