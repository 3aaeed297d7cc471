package scenario

// Default values for optional scenario fields.
const (
	DefaultRoot           = "AAPL"
	DefaultSessionStartMS = 34_200_000 // 09:30:00
	DefaultSessionSpanMS  = 23_400_000 // 6.5h regular session
	DefaultOpen           = 100.0
	DefaultSpread         = 0.10
	DefaultWalkStep       = 0.05
	DefaultQuoteStepMS    = 60_000
	DefaultQuoteCount     = 390
	DefaultStrikeLow      = 8_000
	DefaultStrikeHigh     = 12_000
	DefaultStrikeStep     = 500
	DefaultTicksPerLeg    = 60
)

func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}

	if c.Session.StartMS == 0 {
		c.Session.StartMS = DefaultSessionStartMS
	}
	if c.Session.SpanMS == 0 {
		c.Session.SpanMS = DefaultSessionSpanMS
	}

	if c.Underlying.Open == 0 {
		c.Underlying.Open = DefaultOpen
	}
	if c.Underlying.Spread == 0 {
		c.Underlying.Spread = DefaultSpread
	}
	if c.Underlying.WalkStep == 0 {
		c.Underlying.WalkStep = DefaultWalkStep
	}
	if c.Underlying.StepMS == 0 {
		c.Underlying.StepMS = DefaultQuoteStepMS
	}
	if c.Underlying.Count == 0 {
		c.Underlying.Count = DefaultQuoteCount
	}

	if c.Chain.StrikeLow == 0 {
		c.Chain.StrikeLow = DefaultStrikeLow
	}
	if c.Chain.StrikeHigh == 0 {
		c.Chain.StrikeHigh = DefaultStrikeHigh
	}
	if c.Chain.StrikeStep == 0 {
		c.Chain.StrikeStep = DefaultStrikeStep
	}
	if c.Chain.TicksPerLeg == 0 {
		c.Chain.TicksPerLeg = DefaultTicksPerLeg
	}
}
