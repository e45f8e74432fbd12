// Package fakestore provides an in-memory circulation store for handler tests.
//
// The fake implements the same commit semantics as the Postgres engine, version
// checked writes included, so command handler tests can exercise retry behavior
// and concurrency races without a database. Failure injection allows forcing a
// fixed number of commits to fail with a chosen error.
package fakestore
