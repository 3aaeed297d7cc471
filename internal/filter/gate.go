package filter

import (
	"math"

	"github.com/ashler-herrick/betedge/internal/model"
)

// Gate holds one contract's admission state: the DTE decision plus the
// precomputed strike price and moneyness band. The zero value rejects
// everything.
type Gate struct {
	ok     bool
	strike float64 // strike in price units
	band   float64 // base_pct * sqrt(max(dte, 1))
}

// ForContract evaluates the DTE gate and precomputes the band. DTE is the
// calendar-day difference from the as-of date to expiration; contracts
// expiring today (DTE 0) are admitted with the band floored at sqrt(1).
func ForContract(key model.ContractKey, p model.Params) Gate {
	dte := p.CurrentDate.DaysUntil(key.Expiration)
	if dte < 0 || dte > p.MaxDTE {
		return Gate{}
	}
	if dte < 1 {
		dte = 1
	}
	return Gate{
		ok:     true,
		strike: key.StrikePrice(),
		band:   p.BasePct * math.Sqrt(float64(dte)),
	}
}

// OK reports whether the contract passed the DTE gate.
func (g Gate) OK() bool {
	return g.ok
}

// Admit applies the moneyness gate against the matched underlying price.
// The boundary is inclusive.
func (g Gate) Admit(underlying float32) bool {
	u := float64(underlying)
	return g.ok && math.Abs(g.strike-u) <= u*g.band
}
