package postgreswrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/circulationstore/postgresengine"
	"github.com/bookhive/circulation-go/lending/shared/shell/config"
)

// Engine type constants
const (
	typePGXPool = "pgx.pool"
	typeSQLDB   = "sql.db"
	typeSQLXDB  = "sqlx.db"
)

// Wrapper interface to abstract over different adapter types
type Wrapper interface {
	GetCirculationStore() postgresengine.CirculationStore
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing
type PGXPoolWrapper struct {
	pool *pgxpool.Pool
	cs   postgresengine.CirculationStore
}

func (e *PGXPoolWrapper) GetCirculationStore() postgresengine.CirculationStore {
	return e.cs
}

func (e *PGXPoolWrapper) Close() {
	e.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing
type SQLDBWrapper struct {
	db *sql.DB
	cs postgresengine.CirculationStore
}

func (e *SQLDBWrapper) GetCirculationStore() postgresengine.CirculationStore {
	return e.cs
}

func (e *SQLDBWrapper) Close() {
	_ = e.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx.DB-based testing
type SQLXWrapper struct {
	db *sqlx.DB
	cs postgresengine.CirculationStore
}

func (e *SQLXWrapper) GetCirculationStore() postgresengine.CirculationStore {
	return e.cs
}

func (e *SQLXWrapper) Close() {
	_ = e.db.Close() // ignore error
}

// CreateWrapperWithTestConfig creates the appropriate wrapper based on the environment variable
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresengine.Option) Wrapper {
	engineTypeFromEnv := strings.ToLower(os.Getenv("ADAPTER_TYPE"))

	switch engineTypeFromEnv {
	case typePGXPool, "":
		connPool, err := pgxpool.NewWithConfig(context.Background(), config.PostgresPGXPoolTestConfig())
		assert.NoError(t, err, "error connecting to DB pool in test setup")

		cs, err := postgresengine.NewCirculationStoreFromPGXPool(connPool, options...)
		assert.NoError(t, err, "error creating circulation store")

		return &PGXPoolWrapper{pool: connPool, cs: cs}

	case typeSQLDB:
		db := config.PostgresSQLDBTestConfig()

		cs, err := postgresengine.NewCirculationStoreFromSQLDB(db, options...)
		assert.NoError(t, err, "error creating circulation store")

		return &SQLDBWrapper{db: db, cs: cs}

	case typeSQLXDB:
		db := config.PostgresSQLXTestConfig()

		cs, err := postgresengine.NewCirculationStoreFromSQLX(db, options...)
		assert.NoError(t, err, "error creating circulation store")

		return &SQLXWrapper{db: db, cs: cs}

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", engineTypeFromEnv))
	}
}

// CleanUp truncates the circulation tables for the given wrapper
func CleanUp(t testing.TB, wrapper Wrapper) {
	const truncate = "TRUNCATE TABLE books, loans, circulation_audit RESTART IDENTITY"

	switch e := wrapper.(type) {
	case *PGXPoolWrapper:
		_, err := e.pool.Exec(context.Background(), truncate)
		assert.NoError(t, err, "error cleaning up the circulation tables")

	case *SQLDBWrapper:
		_, err := e.db.Exec(truncate)
		assert.NoError(t, err, "error cleaning up the circulation tables")

	case *SQLXWrapper:
		_, err := e.db.Exec(truncate)
		assert.NoError(t, err, "error cleaning up the circulation tables")

	default:
		panic(fmt.Sprintf("unsupported wrapper type: %T", e))
	}
}
