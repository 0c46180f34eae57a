package repository

import (
	"fmt"
	"strings"

	"github.com/gojobly/jobly/jobs/models"
)

// BuildWhereClause compiles a JobFilter into a SQL WHERE fragment plus its
// bound values, following the same conventions as the companies builder:
// empty fragment when nothing applies, otherwise " WHERE " + predicates
// joined by " AND ", placeholders numbered from $1 in emission order
// (title, minSalary, hasEquity).
//
// HasEquity is deliberately one-sided: only true adds a predicate (nonzero
// equity); false and absent both mean "don't filter on equity".
func BuildWhereClause(filter models.JobFilter) (string, []interface{}) {
	var predicates []string
	values := []interface{}{}

	if filter.Title != "" {
		values = append(values, "%"+filter.Title+"%")
		predicates = append(predicates, fmt.Sprintf("title ILIKE $%d", len(values)))
	}
	if filter.MinSalary != nil {
		values = append(values, *filter.MinSalary)
		predicates = append(predicates, fmt.Sprintf("salary >= $%d", len(values)))
	}
	if filter.HasEquity != nil && *filter.HasEquity {
		values = append(values, 0)
		predicates = append(predicates, fmt.Sprintf("equity <> $%d", len(values)))
	}

	if len(predicates) == 0 {
		return "", values
	}
	return " WHERE " + strings.Join(predicates, " AND "), values
}
