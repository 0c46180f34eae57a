// Package queryvalidate normalizes list-endpoint query strings and integer
// path parameters before handlers run. Raw values are percent-decoded and
// coerced into typed filter structs; anything malformed short-circuits with
// a 400 so repositories only ever see well-formed filters.
package queryvalidate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"

	companymodels "github.com/gojobly/jobly/companies/models"
	jobmodels "github.com/gojobly/jobly/jobs/models"
)

// Locals keys under which the coerced filters are stored.
const (
	CompanyFilterKey = "filter:companies"
	JobFilterKey     = "filter:jobs"
)

// Largest id or filter value accepted, matching PostgreSQL's INTEGER.
const maxInt32 = 2147483647

var queryDecoder = schema.NewDecoder()

func init() {
	// Unrecognized query keys are dropped, not rejected.
	queryDecoder.IgnoreUnknownKeys(true)
}

type rawCompanyFilter struct {
	Name         string `schema:"name"`
	MinEmployees string `schema:"minEmployees"`
	MaxEmployees string `schema:"maxEmployees"`
}

type rawJobFilter struct {
	Title     string `schema:"title"`
	MinSalary string `schema:"minSalary"`
	HasEquity string `schema:"hasEquity"`
}

// CompanyFilter returns a handler that decodes and coerces the company list
// filters into a models.CompanyFilter stored under CompanyFilterKey.
func CompanyFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw rawCompanyFilter
		if err := decodeQuery(c, &raw); err != nil {
			return badRequest(c, err)
		}

		filter := companymodels.CompanyFilter{Name: raw.Name}

		min, err := coerceFilterInt("minEmployees", raw.MinEmployees)
		if err != nil {
			return badRequest(c, err)
		}
		filter.MinEmployees = min

		max, err := coerceFilterInt("maxEmployees", raw.MaxEmployees)
		if err != nil {
			return badRequest(c, err)
		}
		filter.MaxEmployees = max

		c.Locals(CompanyFilterKey, filter)
		return c.Next()
	}
}

// JobFilter returns a handler that decodes and coerces the job list filters
// into a models.JobFilter stored under JobFilterKey.
func JobFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw rawJobFilter
		if err := decodeQuery(c, &raw); err != nil {
			return badRequest(c, err)
		}

		filter := jobmodels.JobFilter{Title: raw.Title}

		minSalary, err := coerceFilterInt("minSalary", raw.MinSalary)
		if err != nil {
			return badRequest(c, err)
		}
		filter.MinSalary = minSalary

		hasEquity, err := coerceFilterBool("hasEquity", raw.HasEquity)
		if err != nil {
			return badRequest(c, err)
		}
		filter.HasEquity = hasEquity

		c.Locals(JobFilterKey, filter)
		return c.Next()
	}
}

// CompanyFilterValue reads the filter stored by CompanyFilter. The zero
// filter is returned when the middleware did not run.
func CompanyFilterValue(c *fiber.Ctx) companymodels.CompanyFilter {
	if filter, ok := c.Locals(CompanyFilterKey).(companymodels.CompanyFilter); ok {
		return filter
	}
	return companymodels.CompanyFilter{}
}

// JobFilterValue reads the filter stored by JobFilter.
func JobFilterValue(c *fiber.Ctx) jobmodels.JobFilter {
	if filter, ok := c.Locals(JobFilterKey).(jobmodels.JobFilter); ok {
		return filter
	}
	return jobmodels.JobFilter{}
}

// IntParam returns a handler that parses the named path parameter as a
// positive integer and stores it in Locals under "param:"+name. A value
// that is not an integer in range produces a 400 before the route handler
// runs.
func IntParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := c.Params(name)
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil || id < 1 || id > maxInt32 {
			return badRequest(c, &InvalidIdentifierError{Param: name, Value: value})
		}
		c.Locals("param:"+name, id)
		return c.Next()
	}
}

// IntParamValue reads an id stored by IntParam.
func IntParamValue(c *fiber.Ctx, name string) int64 {
	if id, ok := c.Locals("param:" + name).(int64); ok {
		return id
	}
	return 0
}

// decodeQuery parses the raw (still escaped) query string and populates dst
// via its schema tags. Fasthttp would otherwise decode the string for us and
// swallow malformed escapes, so the split and unescape happen here.
func decodeQuery(c *fiber.Ctx, dst interface{}) error {
	values, err := parseRawQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return err
	}
	if err := queryDecoder.Decode(dst, values); err != nil {
		return &DecodeError{Param: "query", Err: err}
	}
	return nil
}

// parseRawQuery splits a raw query string into url.Values, percent-decoding
// each key and value ('+' decodes to a space). A malformed escape anywhere
// fails the whole request.
func parseRawQuery(raw string) (url.Values, error) {
	values := url.Values{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")

		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			return nil, &DecodeError{Param: key, Err: err}
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, &DecodeError{Param: decodedKey, Err: err}
		}
		values.Add(decodedKey, decodedValue)
	}
	return values, nil
}

// coerceFilterInt turns a raw filter value into a bounded non-negative int.
// An empty value means the filter was absent and yields a nil pointer. The
// value is parsed as a float first so "1.5" is recognized as fractional
// rather than failing as a bad integer.
func coerceFilterInt(param, raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &RangeValidationError{Param: param, Reason: "must be a number"}
	}
	if f < 0 {
		return nil, &RangeValidationError{Param: param, Reason: "must not be negative"}
	}
	if f > maxInt32 {
		return nil, &RangeValidationError{Param: param, Reason: "is too large"}
	}
	if f != float64(int64(f)) {
		return nil, &RangeValidationError{Param: param, Reason: "must be a whole number"}
	}

	n := int(f)
	return &n, nil
}

// coerceFilterBool accepts only the literals "true" and "false", case
// insensitively. Anything else, including "1" and "t", is rejected.
func coerceFilterBool(param, raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}

	switch strings.ToLower(raw) {
	case "true":
		b := true
		return &b, nil
	case "false":
		b := false
		return &b, nil
	default:
		return nil, &BadRequestError{Param: param, Reason: `must be "true" or "false"`}
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    CodeValidationFailed,
		"message": err.Error(),
	})
}
