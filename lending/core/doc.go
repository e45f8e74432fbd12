// Package core contains the pure business logic for library circulation.
//
// Every use case funnels through a Decide function in its feature package:
// given the current state (a Book snapshot, possibly an open Loan) and a
// command, Decide returns a DecisionResult with no side effects. The
// imperative shell loads state, calls Decide and commits the resulting
// StateChange atomically through the circulation store.
//
// Types here never import infrastructure packages. Keeping the core pure
// makes invariants like the copy-count bounds trivially unit-testable.
package core
