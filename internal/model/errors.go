package model

import "fmt"

// Payload names used in error context.
const (
	PayloadOption = "option"
	PayloadStock  = "stock"
)

// ArgumentError reports an invalid caller-supplied parameter.
type ArgumentError struct {
	Param  string // parameter name
	Reason string // why it was rejected
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Param, e.Reason)
}

// ParseError reports a payload that is not well-formed JSON.
type ParseError struct {
	Payload string // "option" or "stock"
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s payload: %v", e.Payload, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports well-formed JSON that violates the expected payload
// shape: a missing or mistyped field, an out-of-range value, or an
// out-of-order quote sequence.
type SchemaError struct {
	Payload string // "option" or "stock"
	Field   string // offending field, if known
	Index   int    // entry index within the response array, -1 when not positional
	Reason  string
}

func (e *SchemaError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s payload entry %d: field %s: %s", e.Payload, e.Index, e.Field, e.Reason)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s payload: field %s: %s", e.Payload, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s payload: %s", e.Payload, e.Reason)
}
