package overdueloansbymember

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookhive/circulation-go/lending/core"
)

const (
	queryType = "OverdueLoansByMember"
)

// Query represents the intent to query the overdue loans of a member.
// Now is the reference time overdueness is judged against.
type Query struct {
	MemberID uuid.UUID
	Now      core.OccurredAt
}

// BuildQuery creates a new Query with the provided member ID and reference time.
func BuildQuery(memberID uuid.UUID, now time.Time) Query {
	return Query{
		MemberID: memberID,
		Now:      core.ToOccurredAt(now),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
