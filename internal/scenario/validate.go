package scenario

import (
	"errors"
	"fmt"

	"github.com/ashler-herrick/betedge/internal/model"
)

const msPerDay = 86_400_000

// Validate checks that all required fields are set and values are
// mutually consistent.
func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.New("root is required")
	}
	if !model.Date(c.Date).Valid() {
		return fmt.Errorf("date %d is not a valid YYYYMMDD date", c.Date)
	}

	if c.Session.StartMS < 0 {
		return errors.New("session.start_ms must be >= 0")
	}
	if c.Session.SpanMS < 1 {
		return errors.New("session.span_ms must be >= 1")
	}
	if c.Session.StartMS+c.Session.SpanMS > msPerDay {
		return errors.New("session window extends past midnight")
	}

	if c.Underlying.Open <= 0 {
		return errors.New("underlying.open must be > 0")
	}
	if c.Underlying.Spread < 0 {
		return errors.New("underlying.spread must be >= 0")
	}
	if c.Underlying.WalkStep < 0 {
		return errors.New("underlying.walk_step must be >= 0")
	}
	if c.Underlying.StepMS < 1 {
		return errors.New("underlying.step_ms must be >= 1")
	}
	if c.Underlying.Count < 1 {
		return errors.New("underlying.count must be >= 1")
	}
	if c.Session.StartMS+(c.Underlying.Count-1)*c.Underlying.StepMS >= msPerDay {
		return errors.New("quote series extends past midnight")
	}

	if len(c.Chain.Expirations) == 0 {
		return errors.New("chain.expirations is required")
	}
	for _, exp := range c.Chain.Expirations {
		if !model.Date(exp).Valid() {
			return fmt.Errorf("chain.expirations entry %d is not a valid YYYYMMDD date", exp)
		}
	}
	if c.Chain.StrikeLow < 1 {
		return errors.New("chain.strike_low must be >= 1")
	}
	if c.Chain.StrikeHigh < c.Chain.StrikeLow {
		return fmt.Errorf("chain.strike_high (%d) cannot be below strike_low (%d)", c.Chain.StrikeHigh, c.Chain.StrikeLow)
	}
	if c.Chain.StrikeStep < 1 {
		return errors.New("chain.strike_step must be >= 1")
	}
	if c.Chain.TicksPerLeg < 1 {
		return errors.New("chain.ticks_per_leg must be >= 1")
	}

	return nil
}
