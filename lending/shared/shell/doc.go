// Package shell contains the imperative shell shared by all feature slices:
// command and query handler contracts, retry logic for optimistic concurrency
// conflicts, observability helpers and the conversion between core state
// changes and circulation store records.
//
// The shell owns every side effect. Feature packages combine it with their
// pure Decide and projection functions; nothing here contains business rules.
package shell
