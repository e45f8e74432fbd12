package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/bookhive/circulation-go/circulationstore"
	"github.com/bookhive/circulation-go/circulationstore/postgresengine/internal/adapters"
)

const (
	defaultBooksTableName = "books"
	defaultLoansTableName = "loans"
	defaultAuditTableName = "circulation_audit"

	logMsgBuildQueryFailed       = "failed to build sql statement"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgBuildRecordFailed      = "failed to build record from database row"
	logMsgBeginTxFailed          = "failed to begin transaction"
	logMsgRollbackTxFailed       = "failed to roll back transaction"
	logMsgDBExecFailed           = "database execution failed during commit"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgCommitCompleted        = "commit completed"
	logMsgQueryCompleted         = "query completed"
	logMsgConcurrencyConflict    = "concurrency conflict detected"
	logMsgInventoryInconsistent  = "inventory inconsistency detected"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "circulationstore operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrBookID                = "book_id"
	logAttrLoanID                = "loan_id"
	logAttrDurationMS            = "duration_ms"
	logAttrRowsAffected          = "rows_affected"
	logAttrExpectedVersion       = "expected_version"
	logAttrAvailableCopies       = "available_copies"
	logAttrTotalCopies           = "total_copies"
	logActionLoadBook            = "load book"
	logActionFindOpenLoan        = "find open loan"
	logActionLoansForMember      = "loans for member"
	logActionAuditTrail          = "audit trail"
	logActionCommitBorrow        = "commit borrow"
	logActionCommitReturn        = "commit return"
	logActionCommitBookAdded     = "commit book added"
	logActionCommitBookRemoved   = "commit book removed"
	colID                        = "id"
	colTitle                     = "title"
	colTotalCopies               = "total_copies"
	colAvailableCopies           = "available_copies"
	colActive                    = "active"
	colVersion                   = "version"
	colBookID                    = "book_id"
	colMemberID                  = "member_id"
	colLoanID                    = "loan_id"
	colBorrowDate                = "borrow_date"
	colClaimedReturnDate         = "claimed_return_date"
	colReturnDate                = "return_date"
	colReturned                  = "returned"
	colEntryType                 = "entry_type"
	colPayload                   = "payload"
	colOccurredAt                = "occurred_at"
	colCreatedAt                 = "created_at"
	colUpdatedAt                 = "updated_at"
	dialectPostgres              = "postgres"
	castJsonb                    = "?::jsonb"
	exprDecrementAvailableCopies = colAvailableCopies + " - 1"
	exprIncrementAvailableCopies = colAvailableCopies + " + 1"
	exprIncrementVersion         = colVersion + " + 1"
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
)

// CirculationStore implements the circulation store on a PostgreSQL database.
// It leverages a database adapter and supports customizable logging and table configuration.
type CirculationStore struct {
	db             adapters.DBAdapter
	booksTableName string
	loansTableName string
	auditTableName string
	logger         circulationstore.Logger
}

// NewCirculationStoreFromPGXPool creates a new CirculationStore using a pgx Pool with optional configuration.
func NewCirculationStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (CirculationStore, error) {
	if db == nil {
		return CirculationStore{}, circulationstore.ErrNilDatabaseConnection
	}

	return newCirculationStore(adapters.NewPGXAdapter(db), options...)
}

// NewCirculationStoreFromPGXPoolWithReplica creates a new CirculationStore using a primary pgx Pool
// and a replica pool for eventually-consistent ledger reads.
func NewCirculationStoreFromPGXPoolWithReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (CirculationStore, error) {
	if db == nil || replica == nil {
		return CirculationStore{}, circulationstore.ErrNilDatabaseConnection
	}

	return newCirculationStore(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewCirculationStoreFromSQLDB creates a new CirculationStore using a sql.DB with optional configuration.
func NewCirculationStoreFromSQLDB(db *sql.DB, options ...Option) (CirculationStore, error) {
	if db == nil {
		return CirculationStore{}, circulationstore.ErrNilDatabaseConnection
	}

	return newCirculationStore(adapters.NewSQLAdapter(db), options...)
}

// NewCirculationStoreFromSQLX creates a new CirculationStore using a sqlx.DB with optional configuration.
func NewCirculationStoreFromSQLX(db *sqlx.DB, options ...Option) (CirculationStore, error) {
	if db == nil {
		return CirculationStore{}, circulationstore.ErrNilDatabaseConnection
	}

	return newCirculationStore(adapters.NewSQLXAdapter(db), options...)
}

func newCirculationStore(db adapters.DBAdapter, options ...Option) (CirculationStore, error) {
	cs := CirculationStore{
		db:             db,
		booksTableName: defaultBooksTableName,
		loansTableName: defaultLoansTableName,
		auditTableName: defaultAuditTableName,
	}

	for _, option := range options {
		if err := option(&cs); err != nil {
			return CirculationStore{}, err
		}
	}

	return cs, nil
}

/*** Read side ***/

// LoadBook retrieves the inventory record for the given book id, including the
// optimistic-lock version a subsequent commit must be conditional on.
// Returns circulationstore.ErrBookNotFound if no row exists.
func (cs CirculationStore) LoadBook(ctx context.Context, bookID string) (circulationstore.BookRecord, error) {
	var empty circulationstore.BookRecord

	selectStmt := goqu.Dialect(dialectPostgres).
		From(cs.booksTableName).
		Select(colID, colTitle, colTotalCopies, colAvailableCopies, colActive, colVersion, colCreatedAt, colUpdatedAt).
		Where(goqu.Ex{colID: bookID})

	sqlQuery, toSQLErr := cs.toSQL(selectStmt, logActionLoadBook)
	if toSQLErr != nil {
		return empty, toSQLErr
	}

	rows, queryErr := cs.executeQuery(ctx, sqlQuery, logActionLoadBook)
	if queryErr != nil {
		return empty, queryErr
	}
	defer cs.closeRows(rows)

	if !rows.Next() {
		return empty, circulationstore.ErrBookNotFound
	}

	record, scanErr := cs.scanBookRow(rows)
	if scanErr != nil {
		return empty, scanErr
	}

	return record, nil
}

// FindOpenLoan retrieves the open loan for the given book and member, if one exists.
// With the at-most-one-open-loan-per-pair rule enforced on the write side there is
// never more than one candidate; the most recent borrow wins if legacy data disagrees.
func (cs CirculationStore) FindOpenLoan(ctx context.Context, bookID string, memberID string) (
	circulationstore.LoanRecord,
	bool,
	error,
) {

	var empty circulationstore.LoanRecord

	selectStmt := cs.selectLoanColumns().
		Where(
			goqu.Ex{colBookID: bookID, colMemberID: memberID},
			goqu.C(colReturnDate).IsNull(),
		).
		Order(goqu.I(colBorrowDate).Desc()).
		Limit(1)

	sqlQuery, toSQLErr := cs.toSQL(selectStmt, logActionFindOpenLoan)
	if toSQLErr != nil {
		return empty, false, toSQLErr
	}

	rows, queryErr := cs.executeQuery(ctx, sqlQuery, logActionFindOpenLoan)
	if queryErr != nil {
		return empty, false, queryErr
	}
	defer cs.closeRows(rows)

	if !rows.Next() {
		return empty, false, nil
	}

	record, scanErr := cs.scanLoanRow(rows)
	if scanErr != nil {
		return empty, false, scanErr
	}

	return record, true, nil
}

// LoansForMember retrieves all loans for the given member, open and closed,
// ordered by borrow date (oldest first). This reads the ledger only; the
// inventory table is never touched by the read side.
func (cs CirculationStore) LoansForMember(ctx context.Context, memberID string) (circulationstore.LoanRecords, error) {
	selectStmt := cs.selectLoanColumns().
		Where(goqu.Ex{colMemberID: memberID}).
		Order(goqu.I(colBorrowDate).Asc())

	sqlQuery, toSQLErr := cs.toSQL(selectStmt, logActionLoansForMember)
	if toSQLErr != nil {
		return nil, toSQLErr
	}

	rows, queryErr := cs.executeQuery(ctx, sqlQuery, logActionLoansForMember)
	if queryErr != nil {
		return nil, queryErr
	}
	defer cs.closeRows(rows)

	loans := make(circulationstore.LoanRecords, 0)

	for rows.Next() {
		record, scanErr := cs.scanLoanRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		loans = append(loans, record)
	}

	cs.logOperation(logMsgQueryCompleted, logAttrRowsAffected, len(loans))

	return loans, nil
}

// AuditTrailForBook retrieves the audit entries for the given book in commit order.
func (cs CirculationStore) AuditTrailForBook(ctx context.Context, bookID string) (circulationstore.AuditEntries, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(cs.auditTableName).
		Select(colEntryType, colBookID, colMemberID, colLoanID, colPayload, colOccurredAt).
		Where(goqu.Ex{colBookID: bookID}).
		Order(goqu.I(colID).Asc())

	sqlQuery, toSQLErr := cs.toSQL(selectStmt, logActionAuditTrail)
	if toSQLErr != nil {
		return nil, toSQLErr
	}

	rows, queryErr := cs.executeQuery(ctx, sqlQuery, logActionAuditTrail)
	if queryErr != nil {
		return nil, queryErr
	}
	defer cs.closeRows(rows)

	entries := make(circulationstore.AuditEntries, 0)

	for rows.Next() {
		var (
			entryType  string
			scannedID  string
			memberID   sql.NullString
			loanID     sql.NullString
			payload    []byte
			occurredAt time.Time
		)

		if scanErr := rows.Scan(&entryType, &scannedID, &memberID, &loanID, &payload, &occurredAt); scanErr != nil {
			cs.logError(logMsgScanRowFailed, logAttrError, scanErr.Error())
			return nil, errors.Join(circulationstore.ErrScanningDBRowFailed, scanErr)
		}

		entry, buildErr := circulationstore.BuildAuditEntry(entryType, scannedID, memberID.String, loanID.String, payload, occurredAt)
		if buildErr != nil {
			cs.logError(logMsgBuildRecordFailed, logAttrError, buildErr.Error())
			return nil, buildErr
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

/*** Write side ***/

// CommitBorrow applies a successful borrow decision as one atomic unit:
// decrement the book's available-copy count (conditional on the version the
// decision was made against, the active flag and a remaining copy), insert the
// open loan, append the audit entry, single commit.
//
// Returns circulationstore.ErrConcurrencyConflict when another writer mutated
// the book row first; the caller should re-load, re-decide and retry.
func (cs CirculationStore) CommitBorrow(
	ctx context.Context,
	book circulationstore.BookRecord,
	loan circulationstore.LoanRecord,
	audit circulationstore.AuditEntry,
) error {

	now := time.Now().UTC()
	builder := goqu.Dialect(dialectPostgres)

	updateStmt := builder.
		Update(cs.booksTableName).
		Set(goqu.Record{
			colAvailableCopies: goqu.L(exprDecrementAvailableCopies),
			colVersion:         goqu.L(exprIncrementVersion),
			colUpdatedAt:       now,
		}).
		Where(
			goqu.Ex{colID: book.ID, colVersion: book.Version, colActive: true},
			goqu.C(colAvailableCopies).Gte(1),
		)

	insertLoanStmt := builder.
		Insert(cs.loansTableName).
		Rows(goqu.Record{
			colID:                loan.ID,
			colBookID:            loan.BookID,
			colMemberID:          loan.MemberID,
			colBorrowDate:        loan.BorrowDate,
			colClaimedReturnDate: loan.ClaimedReturnDate,
			colReturnDate:        nil,
			colReturned:          false,
			colCreatedAt:         now,
			colUpdatedAt:         now,
		})

	return cs.runCommit(ctx, logActionCommitBorrow, book, audit, func(tx adapters.DBTx) error {
		rowsAffected, execErr := cs.execInTx(ctx, tx, updateStmt, logActionCommitBorrow)
		if execErr != nil {
			return execErr
		}

		if rowsAffected == 0 {
			cs.logOperation(
				logMsgConcurrencyConflict,
				logAttrBookID, book.ID,
				logAttrExpectedVersion, book.Version,
			)

			return circulationstore.ErrConcurrencyConflict
		}

		if _, execErr = cs.execInTx(ctx, tx, insertLoanStmt, logActionCommitBorrow); execErr != nil {
			return execErr
		}

		return nil
	})
}

// CommitReturn applies a successful return decision as one atomic unit:
// close the loan (conditional on it still being open), increment the book's
// available-copy count (conditional on the version), append the audit entry,
// single commit.
//
// Returns circulationstore.ErrConcurrencyConflict when the loan was closed or
// the book row mutated concurrently, and circulationstore.ErrInventoryInconsistent
// when the increment would exceed the total-copy count - the latter signals a
// data-integrity fault and must not be retried.
func (cs CirculationStore) CommitReturn(
	ctx context.Context,
	book circulationstore.BookRecord,
	loan circulationstore.LoanRecord,
	audit circulationstore.AuditEntry,
) error {

	now := time.Now().UTC()
	builder := goqu.Dialect(dialectPostgres)

	closeLoanStmt := builder.
		Update(cs.loansTableName).
		Set(goqu.Record{
			colReturnDate: loan.ReturnDate,
			colReturned:   true,
			colUpdatedAt:  now,
		}).
		Where(
			goqu.Ex{colID: loan.ID},
			goqu.C(colReturnDate).IsNull(),
		)

	incrementStmt := builder.
		Update(cs.booksTableName).
		Set(goqu.Record{
			colAvailableCopies: goqu.L(exprIncrementAvailableCopies),
			colVersion:         goqu.L(exprIncrementVersion),
			colUpdatedAt:       now,
		}).
		Where(goqu.Ex{colID: book.ID, colVersion: book.Version}).
		Returning(colAvailableCopies, colTotalCopies)

	return cs.runCommit(ctx, logActionCommitReturn, book, audit, func(tx adapters.DBTx) error {
		rowsAffected, execErr := cs.execInTx(ctx, tx, closeLoanStmt, logActionCommitReturn)
		if execErr != nil {
			return execErr
		}

		if rowsAffected == 0 {
			cs.logOperation(logMsgConcurrencyConflict, logAttrLoanID, loan.ID)
			return circulationstore.ErrConcurrencyConflict
		}

		return cs.incrementCheckingBounds(ctx, tx, incrementStmt, book)
	})
}

// CommitBookAdded inserts a new inventory record and the audit entry as one atomic unit.
// A concurrent add of the same book id surfaces as circulationstore.ErrConcurrencyConflict;
// on retry the caller will load the existing record and decide idempotently.
func (cs CirculationStore) CommitBookAdded(
	ctx context.Context,
	book circulationstore.BookRecord,
	audit circulationstore.AuditEntry,
) error {

	now := time.Now().UTC()

	row := goqu.Record{
		colID:              book.ID,
		colTitle:           book.Title,
		colTotalCopies:     nil,
		colAvailableCopies: book.AvailableCopies,
		colActive:          book.Active,
		colVersion:         book.Version,
		colCreatedAt:       now,
		colUpdatedAt:       now,
	}
	if book.CopiesTracked {
		row[colTotalCopies] = book.TotalCopies
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(cs.booksTableName).
		Rows(row).
		OnConflict(goqu.DoNothing())

	return cs.runCommit(ctx, logActionCommitBookAdded, book, audit, func(tx adapters.DBTx) error {
		rowsAffected, execErr := cs.execInTx(ctx, tx, insertStmt, logActionCommitBookAdded)
		if execErr != nil {
			return execErr
		}

		if rowsAffected == 0 {
			cs.logOperation(logMsgConcurrencyConflict, logAttrBookID, book.ID)
			return circulationstore.ErrConcurrencyConflict
		}

		return nil
	})
}

// CommitBookRemoved deactivates an inventory record (conditional on the version)
// and appends the audit entry as one atomic unit. Open loans are untouched; they
// can still be returned after removal.
func (cs CirculationStore) CommitBookRemoved(
	ctx context.Context,
	book circulationstore.BookRecord,
	audit circulationstore.AuditEntry,
) error {

	now := time.Now().UTC()

	updateStmt := goqu.Dialect(dialectPostgres).
		Update(cs.booksTableName).
		Set(goqu.Record{
			colActive:    false,
			colVersion:   goqu.L(exprIncrementVersion),
			colUpdatedAt: now,
		}).
		Where(goqu.Ex{colID: book.ID, colVersion: book.Version, colActive: true})

	return cs.runCommit(ctx, logActionCommitBookRemoved, book, audit, func(tx adapters.DBTx) error {
		rowsAffected, execErr := cs.execInTx(ctx, tx, updateStmt, logActionCommitBookRemoved)
		if execErr != nil {
			return execErr
		}

		if rowsAffected == 0 {
			cs.logOperation(
				logMsgConcurrencyConflict,
				logAttrBookID, book.ID,
				logAttrExpectedVersion, book.Version,
			)

			return circulationstore.ErrConcurrencyConflict
		}

		return nil
	})
}

/*** Commit plumbing ***/

// runCommit opens the transaction, runs the statement sequence, appends the audit
// entry and commits. Any error rolls the whole unit back - a failed commit leaves
// no partial effect.
func (cs CirculationStore) runCommit(
	ctx context.Context,
	action string,
	book circulationstore.BookRecord,
	audit circulationstore.AuditEntry,
	statements func(tx adapters.DBTx) error,
) error {

	start := time.Now()

	tx, beginErr := cs.db.BeginTx(ctx)
	if beginErr != nil {
		cs.logError(logMsgBeginTxFailed, logAttrError, beginErr.Error())
		return errors.Join(circulationstore.ErrBeginningTxFailed, beginErr)
	}
	defer cs.rollbackTx(ctx, tx)

	if err := statements(tx); err != nil {
		return err
	}

	if err := cs.appendAuditEntry(ctx, tx, audit, action); err != nil {
		return err
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		cs.logError(logMsgDBExecFailed, logAttrError, commitErr.Error())
		return errors.Join(circulationstore.ErrCommittingTxFailed, commitErr)
	}

	cs.logOperation(
		logMsgCommitCompleted+": "+action,
		logAttrBookID, book.ID,
		logAttrDurationMS, cs.durationToMilliseconds(time.Since(start)),
	)

	return nil
}

// incrementCheckingBounds executes the version-checked increment and validates the
// bounds invariant on the returned row values.
func (cs CirculationStore) incrementCheckingBounds(
	ctx context.Context,
	tx adapters.DBTx,
	incrementStmt *goqu.UpdateDataset,
	book circulationstore.BookRecord,
) error {

	sqlQuery, _, toSQLErr := incrementStmt.ToSQL()
	if toSQLErr != nil {
		cs.logError(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())
		return errors.Join(circulationstore.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := tx.Query(ctx, sqlQuery)
	if queryErr != nil {
		cs.logError(logMsgDBExecFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		return errors.Join(circulationstore.ErrExecutingCommitFailed, queryErr)
	}
	defer cs.closeRows(rows)

	if !rows.Next() {
		cs.logOperation(
			logMsgConcurrencyConflict,
			logAttrBookID, book.ID,
			logAttrExpectedVersion, book.Version,
		)

		return circulationstore.ErrConcurrencyConflict
	}

	var availableCopies int64
	var totalCopies sql.NullInt64

	if scanErr := rows.Scan(&availableCopies, &totalCopies); scanErr != nil {
		cs.logError(logMsgScanRowFailed, logAttrError, scanErr.Error())
		return errors.Join(circulationstore.ErrScanningDBRowFailed, scanErr)
	}

	if totalCopies.Valid && availableCopies > totalCopies.Int64 {
		cs.logError(
			logMsgInventoryInconsistent,
			logAttrBookID, book.ID,
			logAttrAvailableCopies, availableCopies,
			logAttrTotalCopies, totalCopies.Int64,
		)

		return circulationstore.ErrInventoryInconsistent
	}

	return nil
}

// appendAuditEntry inserts the audit row inside the commit transaction.
func (cs CirculationStore) appendAuditEntry(
	ctx context.Context,
	tx adapters.DBTx,
	audit circulationstore.AuditEntry,
	action string,
) error {

	row := goqu.Record{
		colEntryType:  audit.EntryType,
		colBookID:     audit.BookID,
		colMemberID:   nil,
		colLoanID:     nil,
		colPayload:    goqu.L(castJsonb, string(audit.PayloadJSON)),
		colOccurredAt: audit.OccurredAt,
	}
	if audit.MemberID != "" {
		row[colMemberID] = audit.MemberID
	}
	if audit.LoanID != "" {
		row[colLoanID] = audit.LoanID
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(cs.auditTableName).
		Rows(row)

	if _, execErr := cs.execInTx(ctx, tx, insertStmt, action); execErr != nil {
		return execErr
	}

	return nil
}

// execInTx builds the statement, executes it inside the transaction and returns the rows affected.
func (cs CirculationStore) execInTx(
	ctx context.Context,
	tx adapters.DBTx,
	stmt interface{ ToSQL() (string, []interface{}, error) },
	action string,
) (rowsAffectedInt64, error) {

	sqlQuery, _, toSQLErr := stmt.ToSQL()
	if toSQLErr != nil {
		cs.logError(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())
		return 0, errors.Join(circulationstore.ErrBuildingQueryFailed, toSQLErr)
	}

	start := time.Now()
	result, execErr := tx.Exec(ctx, sqlQuery)
	cs.logQueryWithDuration(sqlQuery, action, time.Since(start))

	if execErr != nil {
		cs.logError(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		return 0, errors.Join(circulationstore.ErrExecutingCommitFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		cs.logError(logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())
		return 0, errors.Join(circulationstore.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, nil
}

// rollbackTx safely rolls back and logs unexpected failures; after a commit it is a no-op.
func (cs CirculationStore) rollbackTx(ctx context.Context, tx adapters.DBTx) {
	if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
		if cs.logger != nil {
			cs.logger.Warn(logMsgRollbackTxFailed, logAttrError, rollbackErr.Error())
		}
	}
}

/*** Query plumbing ***/

func (cs CirculationStore) selectLoanColumns() *goqu.SelectDataset {
	return goqu.Dialect(dialectPostgres).
		From(cs.loansTableName).
		Select(colID, colBookID, colMemberID, colBorrowDate, colClaimedReturnDate, colReturnDate, colCreatedAt, colUpdatedAt)
}

func (cs CirculationStore) toSQL(selectStmt *goqu.SelectDataset, action string) (sqlQueryString, error) {
	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		cs.logError(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error(), logAttrQuery, action)
		return "", errors.Join(circulationstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// executeQuery executes the SQL query and logs timing information.
func (cs CirculationStore) executeQuery(ctx context.Context, sqlQuery string, action string) (adapters.DBRows, error) {
	start := time.Now()
	rows, queryErr := cs.db.Query(ctx, sqlQuery)
	cs.logQueryWithDuration(sqlQuery, action, time.Since(start))

	if queryErr != nil {
		cs.logError(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		return nil, errors.Join(circulationstore.ErrQueryingStoreFailed, queryErr)
	}

	return rows, nil
}

// closeRows safely closes database rows and logs any errors.
func (cs CirculationStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if cs.logger != nil {
			cs.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

func (cs CirculationStore) scanBookRow(rows adapters.DBRows) (circulationstore.BookRecord, error) {
	var (
		id              string
		title           string
		totalCopies     sql.NullInt64
		availableCopies int64
		active          bool
		version         int64
		createdAt       time.Time
		updatedAt       time.Time
	)

	if scanErr := rows.Scan(&id, &title, &totalCopies, &availableCopies, &active, &version, &createdAt, &updatedAt); scanErr != nil {
		cs.logError(logMsgScanRowFailed, logAttrError, scanErr.Error())
		return circulationstore.BookRecord{}, errors.Join(circulationstore.ErrScanningDBRowFailed, scanErr)
	}

	var record circulationstore.BookRecord
	var buildErr error

	if totalCopies.Valid {
		record, buildErr = circulationstore.BuildBookRecord(
			id, title, int(totalCopies.Int64), int(availableCopies), active, circulationstore.VersionUint(version))
	} else {
		record, buildErr = circulationstore.BuildUntrackedBookRecord(
			id, title, int(availableCopies), active, circulationstore.VersionUint(version))
	}

	if buildErr != nil {
		cs.logError(logMsgBuildRecordFailed, logAttrError, buildErr.Error(), logAttrBookID, id)
		return circulationstore.BookRecord{}, buildErr
	}

	record.CreatedAt = createdAt
	record.UpdatedAt = updatedAt

	return record, nil
}

func (cs CirculationStore) scanLoanRow(rows adapters.DBRows) (circulationstore.LoanRecord, error) {
	var (
		id                string
		bookID            string
		memberID          string
		borrowDate        time.Time
		claimedReturnDate time.Time
		returnDate        sql.NullTime
		createdAt         time.Time
		updatedAt         time.Time
	)

	if scanErr := rows.Scan(&id, &bookID, &memberID, &borrowDate, &claimedReturnDate, &returnDate, &createdAt, &updatedAt); scanErr != nil {
		cs.logError(logMsgScanRowFailed, logAttrError, scanErr.Error())
		return circulationstore.LoanRecord{}, errors.Join(circulationstore.ErrScanningDBRowFailed, scanErr)
	}

	var record circulationstore.LoanRecord
	var buildErr error

	if returnDate.Valid {
		record, buildErr = circulationstore.BuildClosedLoanRecord(id, bookID, memberID, borrowDate, claimedReturnDate, returnDate.Time)
	} else {
		record, buildErr = circulationstore.BuildOpenLoanRecord(id, bookID, memberID, borrowDate, claimedReturnDate)
	}

	if buildErr != nil {
		cs.logError(logMsgBuildRecordFailed, logAttrError, buildErr.Error(), logAttrLoanID, id)
		return circulationstore.LoanRecord{}, buildErr
	}

	record.CreatedAt = createdAt
	record.UpdatedAt = updatedAt

	return record, nil
}

/*** Logging helpers ***/

// logQueryWithDuration logs SQL statements with execution time at debug level if the logger is configured.
func (cs CirculationStore) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if cs.logger != nil {
		cs.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, cs.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (cs CirculationStore) logOperation(action string, args ...any) {
	if cs.logger != nil {
		cs.logger.Info(logMsgOperation+action, args...)
	}
}

// logError logs critical failures at error level if the logger is configured.
func (cs CirculationStore) logError(msg string, args ...any) {
	if cs.logger != nil {
		cs.logger.Error(msg, args...)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (cs CirculationStore) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
