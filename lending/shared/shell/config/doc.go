// Package config provides database and observability configuration helpers
// for the circulation system.
//
// It contains factory functions for creating PostgreSQL connections using
// different drivers (pgx.Pool, sql.DB, sqlx.DB) with pre-configured test
// database DSNs, and for wiring OpenTelemetry providers against a local
// observability stack.
//
// This package is part of the shell (infrastructure) layer.
package config
