package engine

// Stats reports what a single run consumed and produced.
//
// Tick conservation holds on every successful filter run:
// Ticks == Rows + DroppedExpiry + Unmatched + DroppedBand.
type Stats struct {
	Contracts     int // contracts decoded from the option payload
	Ticks         int // option ticks decoded
	Quotes        int // stock quotes decoded
	DroppedExpiry int // ticks on contracts rejected by the expiration gate
	Unmatched     int // ticks with no quote at or before their timestamp
	DroppedBand   int // ticks outside the moneyness band
	Rows          int // rows written to the artifact
	Bytes         int // encoded artifact size
}
