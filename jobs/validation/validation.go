package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gojobly/jobly/jobs/models"
)

const maxTitleLength = 120

// Fields accepted by PATCH /jobs/:id. The id and owning company are fixed
// for the life of a posting.
var updatableJobFields = map[string]bool{
	"title":  true,
	"salary": true,
	"equity": true,
}

// ValidateCreateJobRequest validates the create job request
func ValidateCreateJobRequest(req *models.CreateJobRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(req.Title) > maxTitleLength {
		return fmt.Errorf("title cannot exceed %d characters", maxTitleLength)
	}

	if strings.TrimSpace(req.CompanyHandle) == "" {
		return fmt.Errorf("companyHandle is required")
	}

	if req.Salary != nil && *req.Salary < 0 {
		return fmt.Errorf("salary must not be negative")
	}

	if req.Equity != nil {
		if err := validateEquity(*req.Equity); err != nil {
			return err
		}
	}

	return nil
}

// ValidateJobFilter re-checks coerced list filters before they reach the
// query builder.
func ValidateJobFilter(filter models.JobFilter) error {
	if filter.MinSalary != nil && *filter.MinSalary < 0 {
		return fmt.Errorf("minSalary must not be negative")
	}
	return nil
}

// ValidateJobUpdates validates a partial update body field by field.
func ValidateJobUpdates(updates map[string]interface{}) error {
	if len(updates) == 0 {
		return fmt.Errorf("no fields to update")
	}

	for field, value := range updates {
		if !updatableJobFields[field] {
			return fmt.Errorf("field %q cannot be updated", field)
		}

		switch field {
		case "title":
			title, ok := value.(string)
			if !ok || strings.TrimSpace(title) == "" {
				return fmt.Errorf("title must be a non-empty string")
			}
			if len(title) > maxTitleLength {
				return fmt.Errorf("title cannot exceed %d characters", maxTitleLength)
			}
		case "salary":
			if value == nil {
				continue
			}
			// JSON numbers decode as float64.
			n, ok := value.(float64)
			if !ok || n != float64(int64(n)) {
				return fmt.Errorf("salary must be an integer")
			}
			if n < 0 {
				return fmt.Errorf("salary must not be negative")
			}
		case "equity":
			if value == nil {
				continue
			}
			equity, ok := value.(string)
			if !ok {
				return fmt.Errorf("equity must be a decimal string")
			}
			if err := validateEquity(equity); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateEquity checks that equity parses as a decimal in [0, 1]. It is
// stored as NUMERIC text to avoid binary float drift.
func validateEquity(equity string) error {
	f, err := strconv.ParseFloat(equity, 64)
	if err != nil {
		return fmt.Errorf("equity must be a decimal number")
	}
	if f < 0 || f > 1 {
		return fmt.Errorf("equity must be between 0 and 1")
	}
	return nil
}
