// Package postgreswrapper abstracts over the three database adapter types so
// circulation store integration tests can run against pgxpool, sql.DB and sqlx
// without duplication. The adapter is selected with the ADAPTER_TYPE
// environment variable (pgx.pool, sql.db, sqlx.db), defaulting to pgxpool.
package postgreswrapper
