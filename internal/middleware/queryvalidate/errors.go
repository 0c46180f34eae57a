package queryvalidate

import "fmt"

// Code reported in every 400 body produced by this package.
const CodeValidationFailed = "VALIDATION_FAILED"

// InvalidIdentifierError is returned when a path parameter that must be an
// integer id is not one.
type InvalidIdentifierError struct {
	Param string
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("%s must be an integer identifier", e.Param)
}

// DecodeError is returned when a query-string key or value carries a
// malformed percent escape and cannot be unescaped.
type DecodeError struct {
	Param string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed query value for %s", e.Param)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RangeValidationError is returned when a numeric filter value is not a
// representable non-negative 32-bit integer.
type RangeValidationError struct {
	Param  string
	Reason string
}

func (e *RangeValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Param, e.Reason)
}

// BadRequestError is returned when a boolean filter value is neither "true"
// nor "false".
type BadRequestError struct {
	Param  string
	Reason string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("%s %s", e.Param, e.Reason)
}
