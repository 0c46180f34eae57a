package models

import (
	jobmodels "github.com/gojobly/jobly/jobs/models"
)

// Company is a hiring company, keyed by its URL-safe handle.
type Company struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int    `json:"numEmployees" db:"num_employees"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}

// CompanyDetail is a company with its open jobs, returned by the detail endpoint.
type CompanyDetail struct {
	Company
	Jobs []jobmodels.Job `json:"jobs"`
}

// CreateCompanyRequest is the POST /companies body.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyFilter is the typed form of the list-query filters. A nil pointer
// means the filter was not provided; zero is a real value and filters.
type CompanyFilter struct {
	Name         string `schema:"name"`
	MinEmployees *int   `schema:"minEmployees"`
	MaxEmployees *int   `schema:"maxEmployees"`
}
