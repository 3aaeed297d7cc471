package model

import "fmt"

// Params carries the per-invocation filter parameters. Supplied once at the
// call boundary, never ambient.
type Params struct {
	CurrentDate Date    // as-of date for DTE arithmetic (YYYYMMDD)
	MaxDTE      int     // admit contracts expiring within this many calendar days
	BasePct     float64 // moneyness band base fraction, in (0, 1]
}

// Validate checks the parameter ranges. The zero value is invalid.
func (p Params) Validate() error {
	if !p.CurrentDate.Valid() {
		return &ArgumentError{
			Param:  "current_date",
			Reason: fmt.Sprintf("%d is not a valid YYYYMMDD date", uint32(p.CurrentDate)),
		}
	}
	if p.MaxDTE < 0 {
		return &ArgumentError{
			Param:  "max_dte",
			Reason: fmt.Sprintf("must be >= 0, got %d", p.MaxDTE),
		}
	}
	// NaN fails both comparisons and lands here too.
	if !(p.BasePct > 0 && p.BasePct <= 1) {
		return &ArgumentError{
			Param:  "base_pct",
			Reason: fmt.Sprintf("must be in (0, 1], got %v", p.BasePct),
		}
	}
	return nil
}
