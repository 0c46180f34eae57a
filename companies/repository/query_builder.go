package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gojobly/jobly/companies/models"
)

// ErrBadRange is returned when minEmployees exceeds maxEmployees.
var ErrBadRange = errors.New("minEmployees cannot be greater than maxEmployees")

// BuildWhereClause compiles a CompanyFilter into a SQL WHERE fragment plus
// its bound values. The fragment is empty when no predicates apply; otherwise
// it starts with " WHERE " so callers can append it directly to a base query.
// Predicates are emitted in a fixed order (name, minEmployees, maxEmployees)
// and placeholders are numbered from $1 in that order. Filter values are
// always bound, never interpolated; the name match wraps the bound value in
// %...% wildcards rather than touching the fragment.
func BuildWhereClause(filter models.CompanyFilter) (string, []interface{}, error) {
	if filter.MinEmployees != nil && filter.MaxEmployees != nil &&
		*filter.MinEmployees > *filter.MaxEmployees {
		return "", nil, ErrBadRange
	}

	var predicates []string
	values := []interface{}{}

	if filter.Name != "" {
		values = append(values, "%"+filter.Name+"%")
		predicates = append(predicates, fmt.Sprintf("name ILIKE $%d", len(values)))
	}
	if filter.MinEmployees != nil {
		values = append(values, *filter.MinEmployees)
		predicates = append(predicates, fmt.Sprintf("num_employees >= $%d", len(values)))
	}
	if filter.MaxEmployees != nil {
		values = append(values, *filter.MaxEmployees)
		predicates = append(predicates, fmt.Sprintf("num_employees <= $%d", len(values)))
	}

	if len(predicates) == 0 {
		return "", values, nil
	}
	return " WHERE " + strings.Join(predicates, " AND "), values, nil
}
