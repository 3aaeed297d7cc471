package model

// -----------------------------------------------------------------------------
// Contract Types
// -----------------------------------------------------------------------------

// StrikeScale is the number of strike minor units per price unit.
// A strike of 10000 is a 100.00 strike price.
const StrikeScale = 100

// Right identifies the option type.
type Right string

const (
	Call Right = "C"
	Put  Right = "P"
)

// Valid reports whether r is one of the two known rights.
func (r Right) Valid() bool {
	return r == Call || r == Put
}

// ContractKey identifies one option contract. Immutable after decode.
type ContractKey struct {
	Root       string // underlying symbol (e.g., "AAPL")
	Expiration Date   // expiration date (YYYYMMDD)
	Strike     uint32 // strike in minor units (cents)
	Right      Right  // "C" or "P"
}

// Less orders keys by (root, expiration, strike, right). This is the
// deterministic merge order for parallel runs.
func (k ContractKey) Less(o ContractKey) bool {
	if k.Root != o.Root {
		return k.Root < o.Root
	}
	if k.Expiration != o.Expiration {
		return k.Expiration < o.Expiration
	}
	if k.Strike != o.Strike {
		return k.Strike < o.Strike
	}
	return k.Right < o.Right
}

// StrikePrice converts the minor-unit strike to price units.
func (k ContractKey) StrikePrice() float64 {
	return float64(k.Strike) / StrikeScale
}

// -----------------------------------------------------------------------------
// Tick Types
// -----------------------------------------------------------------------------

// Tick is one NBBO quote observation, option or underlying.
// Field order keeps the struct at 24 bytes with no padding.
type Tick struct {
	MsOfDay      uint32  // milliseconds since midnight ET
	BidPrice     float32 // best bid (price units)
	AskPrice     float32 // best ask (price units)
	Date         Date    // trade date (YYYYMMDD)
	BidSize      uint16  // contracts/shares at the bid
	AskSize      uint16  // contracts/shares at the ask
	BidExchange  uint8   // bid exchange code
	BidCondition uint8   // bid condition code
	AskExchange  uint8   // ask exchange code
	AskCondition uint8   // ask condition code
}

// Time returns the tick's composite ordering key.
func (t Tick) Time() uint64 {
	return TimeKey(t.Date, t.MsOfDay)
}

// Mid returns the bid/ask midpoint.
func (t Tick) Mid() float32 {
	return (t.BidPrice + t.AskPrice) / 2
}

// TimeKey combines a trade date and an intraday timestamp into a single
// ordering key: ascending in date, then in ms_of_day.
func TimeKey(date Date, msOfDay uint32) uint64 {
	return uint64(date)<<32 | uint64(msOfDay)
}

// Contract is one option contract with its tick sequence in input order.
type Contract struct {
	Key   ContractKey
	Ticks []Tick
}

// -----------------------------------------------------------------------------
// Quote Series
// -----------------------------------------------------------------------------

// QuoteSeries is the underlying price series the joiner walks: parallel
// slices of composite timestamps and midpoint prices. Read-only after build.
type QuoteSeries struct {
	Times  []uint64  // ascending TimeKey per quote
	Prices []float32 // bid/ask midpoint per quote
}

// NewQuoteSeries derives the join series from underlying ticks. The ticks
// must be time-ordered; a regression is a SchemaError. Equal timestamps are
// legal and the later entry wins the asof tie-break downstream.
func NewQuoteSeries(ticks []Tick) (QuoteSeries, error) {
	s := QuoteSeries{
		Times:  make([]uint64, len(ticks)),
		Prices: make([]float32, len(ticks)),
	}
	var prev uint64
	for i, t := range ticks {
		at := t.Time()
		if i > 0 && at < prev {
			return QuoteSeries{}, &SchemaError{
				Payload: PayloadStock,
				Field:   "ms_of_day",
				Index:   i,
				Reason:  "quote timestamps must be ascending",
			}
		}
		prev = at
		s.Times[i] = at
		s.Prices[i] = t.Mid()
	}
	return s, nil
}

// Len returns the number of quotes in the series.
func (s QuoteSeries) Len() int {
	return len(s.Times)
}
