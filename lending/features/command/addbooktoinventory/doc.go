// Package addbooktoinventory implements the Add Book to Inventory use case.
//
// Registering a book creates its inventory row with every copy available.
// Re-adding an existing book id is an idempotent no-op, which also absorbs the
// race of two concurrent adds: the insert uses ON CONFLICT DO NOTHING and the
// losing writer re-decides against the row the winner created.
package addbooktoinventory
