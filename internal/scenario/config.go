package scenario

// Config is the root description of a synthetic trading scenario.
type Config struct {
	Seed       uint64           `yaml:"seed"`
	Root       string           `yaml:"root"`
	Date       uint32           `yaml:"date"` // trade date, YYYYMMDD
	Session    SessionConfig    `yaml:"session"`
	Underlying UnderlyingConfig `yaml:"underlying"`
	Chain      ChainConfig      `yaml:"chain"`
}

// SessionConfig bounds the trading window option ticks fall into.
type SessionConfig struct {
	StartMS int `yaml:"start_ms"` // session open, ms after midnight
	SpanMS  int `yaml:"span_ms"`  // session length in ms
}

// UnderlyingConfig shapes the stock quote walk.
type UnderlyingConfig struct {
	Open     float64 `yaml:"open"`      // opening midpoint in dollars
	Spread   float64 `yaml:"spread"`    // bid/ask spread in dollars
	WalkStep float64 `yaml:"walk_step"` // max midpoint move per quote in dollars
	StepMS   int     `yaml:"step_ms"`   // spacing between quotes
	Count    int     `yaml:"count"`     // quotes in the session
}

// ChainConfig lays out the option chain grid.
type ChainConfig struct {
	Expirations []uint32 `yaml:"expirations"`   // YYYYMMDD expiration dates
	StrikeLow   uint32   `yaml:"strike_low"`    // lowest strike in cents
	StrikeHigh  uint32   `yaml:"strike_high"`   // highest strike in cents
	StrikeStep  uint32   `yaml:"strike_step"`   // grid spacing in cents
	TicksPerLeg int      `yaml:"ticks_per_leg"` // ticks per contract
}
