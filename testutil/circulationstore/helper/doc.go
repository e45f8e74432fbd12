// Package helper provides arrangement helpers for circulation store
// integration tests.
package helper
