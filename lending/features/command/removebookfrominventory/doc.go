// Package removebookfrominventory implements the Remove Book from Inventory use case.
//
// Removal deactivates the inventory row instead of deleting it: open loans can
// still be returned and the loan ledger keeps its history. New borrows of a
// removed book fail. Removing an already-removed book is an idempotent no-op.
package removebookfrominventory
