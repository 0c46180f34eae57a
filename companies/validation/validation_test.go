package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gojobly/jobly/companies/models"
)

func TestValidateCreateCompanyRequest(t *testing.T) {
	valid := func() *models.CreateCompanyRequest {
		return &models.CreateCompanyRequest{Handle: "acme", Name: "Acme Corp"}
	}

	t.Run("accepts a minimal request", func(t *testing.T) {
		require.NoError(t, ValidateCreateCompanyRequest(valid()))
	})

	t.Run("rejects nil request", func(t *testing.T) {
		require.Error(t, ValidateCreateCompanyRequest(nil))
	})

	t.Run("rejects missing handle", func(t *testing.T) {
		req := valid()
		req.Handle = "  "
		require.Error(t, ValidateCreateCompanyRequest(req))
	})

	t.Run("rejects uppercase or spaced handles", func(t *testing.T) {
		for _, handle := range []string{"Acme", "acme corp"} {
			req := valid()
			req.Handle = handle
			require.Error(t, ValidateCreateCompanyRequest(req), "handle=%q", handle)
		}
	})

	t.Run("rejects missing name", func(t *testing.T) {
		req := valid()
		req.Name = ""
		require.Error(t, ValidateCreateCompanyRequest(req))
	})

	t.Run("rejects negative employee count", func(t *testing.T) {
		req := valid()
		employees := -1
		req.NumEmployees = &employees
		require.Error(t, ValidateCreateCompanyRequest(req))
	})
}

func TestValidateCompanyFilter(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	t.Run("accepts a sane range", func(t *testing.T) {
		require.NoError(t, ValidateCompanyFilter(models.CompanyFilter{
			MinEmployees: intPtr(0),
			MaxEmployees: intPtr(10),
		}))
	})

	t.Run("rejects inverted bounds", func(t *testing.T) {
		require.Error(t, ValidateCompanyFilter(models.CompanyFilter{
			MinEmployees: intPtr(20),
			MaxEmployees: intPtr(10),
		}))
	})

	t.Run("rejects negative bounds", func(t *testing.T) {
		require.Error(t, ValidateCompanyFilter(models.CompanyFilter{MinEmployees: intPtr(-1)}))
	})
}

func TestValidateCompanyUpdates(t *testing.T) {
	t.Run("accepts updatable fields", func(t *testing.T) {
		err := ValidateCompanyUpdates(map[string]interface{}{
			"name":         "Acme Holdings",
			"numEmployees": float64(250),
			"logoUrl":      "https://example.com/logo.png",
		})
		require.NoError(t, err)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		require.Error(t, ValidateCompanyUpdates(map[string]interface{}{}))
	})

	t.Run("rejects the primary key", func(t *testing.T) {
		err := ValidateCompanyUpdates(map[string]interface{}{"handle": "new-handle"})
		require.Error(t, err)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		err := ValidateCompanyUpdates(map[string]interface{}{"revenue": 1000000})
		require.Error(t, err)
	})

	t.Run("rejects fractional employee counts", func(t *testing.T) {
		err := ValidateCompanyUpdates(map[string]interface{}{"numEmployees": 10.5})
		require.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := ValidateCompanyUpdates(map[string]interface{}{"name": "  "})
		require.Error(t, err)
	})
}
