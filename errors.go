package betedge

import (
	"github.com/ashler-herrick/betedge/internal/model"
)

// Params carries the filter parameters for a run.
type Params = model.Params

// Date is a calendar day encoded as YYYYMMDD.
type Date = model.Date

// ArgumentError reports an invalid run parameter.
type ArgumentError = model.ArgumentError

// ParseError reports a payload that is not syntactically valid JSON.
type ParseError = model.ParseError

// SchemaError reports a payload whose shape or values violate the
// vendor contract.
type SchemaError = model.SchemaError
