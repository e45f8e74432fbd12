package openloansbymember

import (
	"github.com/google/uuid"
)

const (
	queryType = "OpenLoansByMember"
)

// Query represents the intent to query the book copies a member currently holds.
type Query struct {
	MemberID uuid.UUID
}

// BuildQuery creates a new Query with the provided member ID.
func BuildQuery(memberID uuid.UUID) Query {
	return Query{
		MemberID: memberID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
