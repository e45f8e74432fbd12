// Package postgresengine implements the circulation store on PostgreSQL.
//
// The engine serves two tables that form the write side - the inventory
// ("books": per-book total and available copy counts, an active flag and an
// optimistic-lock version) and the ledger ("loans": one row per loan, created
// open by a borrow and closed exactly once by the matching return) - plus an
// append-only "circulation_audit" table written inside the same transaction as
// every successful commit.
//
// Expected schema:
//
//	CREATE TABLE books (
//	    id               UUID PRIMARY KEY,
//	    title            TEXT NOT NULL,
//	    total_copies     INTEGER,
//	    available_copies INTEGER NOT NULL,
//	    active           BOOLEAN NOT NULL DEFAULT TRUE,
//	    version          BIGINT NOT NULL DEFAULT 0,
//	    created_at       TIMESTAMPTZ NOT NULL,
//	    updated_at       TIMESTAMPTZ NOT NULL
//	);
//
//	CREATE TABLE loans (
//	    id                  UUID PRIMARY KEY,
//	    book_id             UUID NOT NULL,
//	    member_id           UUID NOT NULL,
//	    borrow_date         TIMESTAMPTZ NOT NULL,
//	    claimed_return_date TIMESTAMPTZ NOT NULL,
//	    return_date         TIMESTAMPTZ,
//	    returned            BOOLEAN NOT NULL DEFAULT FALSE,
//	    created_at          TIMESTAMPTZ NOT NULL,
//	    updated_at          TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX loans_member_idx ON loans (member_id, borrow_date);
//	CREATE INDEX loans_open_pair_idx ON loans (book_id, member_id) WHERE return_date IS NULL;
//
//	CREATE TABLE circulation_audit (
//	    id          BIGSERIAL PRIMARY KEY,
//	    entry_type  TEXT NOT NULL,
//	    book_id     UUID NOT NULL,
//	    member_id   UUID,
//	    loan_id     UUID,
//	    payload     JSONB NOT NULL,
//	    occurred_at TIMESTAMPTZ NOT NULL
//	);
//
// Concurrency discipline: every commit method runs one transaction whose first
// statement is a conditional UPDATE (or conflict-guarded INSERT) keyed on the
// book row's version. Zero affected rows means another writer got there first;
// the transaction is rolled back and circulationstore.ErrConcurrencyConflict is
// returned so the caller can re-load, re-decide and retry. A return that would
// push the available count above the total is rolled back with
// circulationstore.ErrInventoryInconsistent and must not be retried.
package postgresengine
