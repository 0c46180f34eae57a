package validation

import (
	"fmt"
	"strings"

	"github.com/gojobly/jobly/companies/models"
)

const (
	maxHandleLength      = 25
	maxNameLength        = 120
	maxDescriptionLength = 5000
)

// Fields accepted by PATCH /companies/:handle. Anything else is rejected so
// handles and unknown columns can never reach the update builder.
var updatableCompanyFields = map[string]bool{
	"name":         true,
	"description":  true,
	"numEmployees": true,
	"logoUrl":      true,
}

// ValidateCreateCompanyRequest validates the create company request
func ValidateCreateCompanyRequest(req *models.CreateCompanyRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if strings.TrimSpace(req.Handle) == "" {
		return fmt.Errorf("handle is required")
	}
	if len(req.Handle) > maxHandleLength {
		return fmt.Errorf("handle cannot exceed %d characters", maxHandleLength)
	}
	if strings.ToLower(req.Handle) != req.Handle || strings.Contains(req.Handle, " ") {
		return fmt.Errorf("handle must be lowercase with no spaces")
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(req.Name) > maxNameLength {
		return fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}

	if len(req.Description) > maxDescriptionLength {
		return fmt.Errorf("description cannot exceed %d characters", maxDescriptionLength)
	}

	if req.NumEmployees != nil && *req.NumEmployees < 0 {
		return fmt.Errorf("numEmployees must not be negative")
	}

	return nil
}

// ValidateCompanyFilter re-checks coerced list filters before they reach the
// query builder. The middleware already rejects malformed values; this guards
// direct service callers.
func ValidateCompanyFilter(filter models.CompanyFilter) error {
	if filter.MinEmployees != nil && *filter.MinEmployees < 0 {
		return fmt.Errorf("minEmployees must not be negative")
	}
	if filter.MaxEmployees != nil && *filter.MaxEmployees < 0 {
		return fmt.Errorf("maxEmployees must not be negative")
	}
	if filter.MinEmployees != nil && filter.MaxEmployees != nil &&
		*filter.MinEmployees > *filter.MaxEmployees {
		return fmt.Errorf("minEmployees cannot be greater than maxEmployees")
	}
	return nil
}

// ValidateCompanyUpdates validates a partial update body field by field.
func ValidateCompanyUpdates(updates map[string]interface{}) error {
	if len(updates) == 0 {
		return fmt.Errorf("no fields to update")
	}

	for field, value := range updates {
		if !updatableCompanyFields[field] {
			return fmt.Errorf("field %q cannot be updated", field)
		}

		switch field {
		case "name":
			name, ok := value.(string)
			if !ok || strings.TrimSpace(name) == "" {
				return fmt.Errorf("name must be a non-empty string")
			}
			if len(name) > maxNameLength {
				return fmt.Errorf("name cannot exceed %d characters", maxNameLength)
			}
		case "description":
			description, ok := value.(string)
			if !ok {
				return fmt.Errorf("description must be a string")
			}
			if len(description) > maxDescriptionLength {
				return fmt.Errorf("description cannot exceed %d characters", maxDescriptionLength)
			}
		case "numEmployees":
			if value == nil {
				continue
			}
			// JSON numbers decode as float64.
			n, ok := value.(float64)
			if !ok || n != float64(int64(n)) {
				return fmt.Errorf("numEmployees must be an integer")
			}
			if n < 0 {
				return fmt.Errorf("numEmployees must not be negative")
			}
		case "logoUrl":
			if value == nil {
				continue
			}
			if _, ok := value.(string); !ok {
				return fmt.Errorf("logoUrl must be a string")
			}
		}
	}

	return nil
}
