package models

// Job is a posted position at a company. Salary and equity are nullable in
// the schema; equity is NUMERIC and surfaced as its text form to avoid float
// drift.
type Job struct {
	ID            int64   `json:"id" db:"id"`
	Title         string  `json:"title" db:"title"`
	Salary        *int    `json:"salary" db:"salary"`
	Equity        *string `json:"equity" db:"equity"`
	CompanyHandle string  `json:"companyHandle" db:"company_handle"`
}

// CreateJobRequest is the POST /jobs body.
type CreateJobRequest struct {
	Title         string  `json:"title"`
	Salary        *int    `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

// JobFilter is the typed form of the list-query filters. A nil pointer means
// the filter was not provided. HasEquity only filters when true: false and
// absent are both "no predicate".
type JobFilter struct {
	Title     string `schema:"title"`
	MinSalary *int   `schema:"minSalary"`
	HasEquity *bool  `schema:"hasEquity"`
}
