package core

// DecisionResult represents the outcome of a business decision in a Decide function.
// This enables type-safe, functional programming style decision modeling.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory methods:
// IdempotentDecision(), SuccessDecision(change), or ErrorDecision(err).
// Do not construct DecisionResult directly to ensure type safety.
type DecisionResult struct {
	Outcome string      // "idempotent", "success", or "error"
	Change  StateChange // nil for idempotent and error decisions
	Err     error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision creates a DecisionResult indicating no state change is needed.
func IdempotentDecision() DecisionResult {
	return DecisionResult{
		Outcome: idempotentOutcome,
		Change:  nil,
	}
}

// SuccessDecision creates a DecisionResult indicating a state change to commit.
func SuccessDecision(change StateChange) DecisionResult {
	return DecisionResult{
		Outcome: successOutcome,
		Change:  change,
	}
}

// ErrorDecision creates a DecisionResult indicating a business rule violation.
// Nothing is committed; the error surfaces to the caller unchanged.
func ErrorDecision(err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Err:     err,
	}
}

// HasChangeToCommit returns true if there is a state change to commit to the store.
func (r DecisionResult) HasChangeToCommit() bool {
	return r.Outcome == successOutcome
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
