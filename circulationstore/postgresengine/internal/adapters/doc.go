// Package adapters provides database adapter implementations for the PostgreSQL circulation store.
//
// This package implements the adapter pattern to support multiple PostgreSQL database libraries:
// pgxpool.Pool, sql.DB, and sqlx.DB. All adapters provide equivalent functionality through
// a common DBAdapter interface, allowing the store to work seamlessly with any supported
// database connection type.
//
// Beyond plain query execution the adapters expose an explicit transaction handle (DBTx),
// because the store's commit protocol mutates the inventory row and the loan ledger as one
// atomic unit with a single commit. Reads honor the consistency level carried in the context:
// with a replica configured, eventually-consistent reads are routed there while
// strongly-consistent reads and all transactions stay on the primary.
package adapters
