package queryvalidate

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	companymodels "github.com/gojobly/jobly/companies/models"
	jobmodels "github.com/gojobly/jobly/jobs/models"
)

func newCompanyApp(t *testing.T, captured *companymodels.CompanyFilter) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/companies", CompanyFilter(), func(c *fiber.Ctx) error {
		*captured = CompanyFilterValue(c)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func newJobApp(t *testing.T, captured *jobmodels.JobFilter) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/jobs", JobFilter(), func(c *fiber.Ctx) error {
		*captured = JobFilterValue(c)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestCompanyFilterMiddleware(t *testing.T) {
	t.Run("coerces all filters", func(t *testing.T) {
		var filter companymodels.CompanyFilter
		app := newCompanyApp(t, &filter)

		res, err := app.Test(httptest.NewRequest("GET", "/companies?name=net&minEmployees=2&maxEmployees=10", nil))

		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		require.Equal(t, "net", filter.Name)
		require.NotNil(t, filter.MinEmployees)
		require.Equal(t, 2, *filter.MinEmployees)
		require.NotNil(t, filter.MaxEmployees)
		require.Equal(t, 10, *filter.MaxEmployees)
	})

	t.Run("absent filters stay nil", func(t *testing.T) {
		var filter companymodels.CompanyFilter
		app := newCompanyApp(t, &filter)

		res, err := app.Test(httptest.NewRequest("GET", "/companies", nil))

		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		require.Equal(t, "", filter.Name)
		require.Nil(t, filter.MinEmployees)
		require.Nil(t, filter.MaxEmployees)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		var filter companymodels.CompanyFilter
		app := newCompanyApp(t, &filter)

		res, err := app.Test(httptest.NewRequest("GET", "/companies?name=net&sort=asc&page=2", nil))

		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		require.Equal(t, "net", filter.Name)
	})

	t.Run("percent escapes and plus decode into the value", func(t *testing.T) {
		var filter companymodels.CompanyFilter
		app := newCompanyApp(t, &filter)

		res, err := app.Test(httptest.NewRequest("GET", "/companies?name=acme+corp%21", nil))

		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		require.Equal(t, "acme corp!", filter.Name)
	})

	t.Run("malformed percent escape fails", func(t *testing.T) {
		var filter companymodels.CompanyFilter
		app := newCompanyApp(t, &filter)

		res, err := app.Test(httptest.NewRequest("GET", "/companies?name=%zz", nil))

		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	})

	t.Run("zero bound is kept", func(t *testing.T) {
		var filter companymodels.CompanyFilter
		app := newCompanyApp(t, &filter)

		res, err := app.Test(httptest.NewRequest("GET", "/companies?minEmployees=0", nil))

		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		require.NotNil(t, filter.MinEmployees)
		require.Equal(t, 0, *filter.MinEmployees)
	})
}

func TestJobFilterMiddleware(t *testing.T) {
	t.Run("coerces all filters", func(t *testing.T) {
		var filter jobmodels.JobFilter
		app := newJobApp(t, &filter)

		res, err := app.Test(httptest.NewRequest("GET", "/jobs?title=engineer&minSalary=90000&hasEquity=true", nil))

		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		require.Equal(t, "engineer", filter.Title)
		require.NotNil(t, filter.MinSalary)
		require.Equal(t, 90000, *filter.MinSalary)
		require.NotNil(t, filter.HasEquity)
		require.True(t, *filter.HasEquity)
	})

	t.Run("rejects bad numeric values", func(t *testing.T) {
		for _, value := range []string{"a", "-1", "2147483648", "1.5", "NaN"} {
			var filter jobmodels.JobFilter
			app := newJobApp(t, &filter)

			res, err := app.Test(httptest.NewRequest("GET", "/jobs?minSalary="+value, nil))

			require.NoError(t, err)
			require.Equal(t, fiber.StatusBadRequest, res.StatusCode, "minSalary=%s", value)
		}
	})

	t.Run("minSalary zero is valid", func(t *testing.T) {
		var filter jobmodels.JobFilter
		app := newJobApp(t, &filter)

		res, err := app.Test(httptest.NewRequest("GET", "/jobs?minSalary=0", nil))

		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		require.NotNil(t, filter.MinSalary)
		require.Equal(t, 0, *filter.MinSalary)
	})

	t.Run("accepts only boolean literals", func(t *testing.T) {
		for _, value := range []string{"a", "t", "1", "f", "0", "yes"} {
			var filter jobmodels.JobFilter
			app := newJobApp(t, &filter)

			res, err := app.Test(httptest.NewRequest("GET", "/jobs?hasEquity="+value, nil))

			require.NoError(t, err)
			require.Equal(t, fiber.StatusBadRequest, res.StatusCode, "hasEquity=%s", value)
		}
	})

	t.Run("boolean literals are case insensitive", func(t *testing.T) {
		cases := map[string]bool{"true": true, "TRUE": true, "False": false}
		for value, want := range cases {
			var filter jobmodels.JobFilter
			app := newJobApp(t, &filter)

			res, err := app.Test(httptest.NewRequest("GET", "/jobs?hasEquity="+value, nil))

			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, res.StatusCode)
			require.NotNil(t, filter.HasEquity)
			require.Equal(t, want, *filter.HasEquity, "hasEquity=%s", value)
		}
	})
}

func TestIntParam(t *testing.T) {
	newApp := func(captured *int64) *fiber.App {
		app := fiber.New()
		app.Get("/jobs/:id", IntParam("id"), func(c *fiber.Ctx) error {
			*captured = IntParamValue(c, "id")
			return c.SendStatus(fiber.StatusOK)
		})
		return app
	}

	t.Run("parses integer ids", func(t *testing.T) {
		var id int64
		app := newApp(&id)

		res, err := app.Test(httptest.NewRequest("GET", "/jobs/7", nil))

		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		require.Equal(t, int64(7), id)
	})

	t.Run("rejects non-integer ids", func(t *testing.T) {
		for _, value := range []string{"abc", "1.5", "-3", "0", "2147483648"} {
			var id int64
			app := newApp(&id)

			res, err := app.Test(httptest.NewRequest("GET", "/jobs/"+value, nil))

			require.NoError(t, err)
			require.Equal(t, fiber.StatusBadRequest, res.StatusCode, "id=%s", value)
		}
	})
}
