package decode

import "encoding/json"

// tupleLen is the number of fields in a vendor quote tuple.
const tupleLen = 10

// tupleColumns is the canonical tuple column order. When a payload header
// carries a non-empty "format" array it must match this list exactly.
var tupleColumns = [tupleLen]string{
	"ms_of_day",
	"bid_size",
	"bid_exchange",
	"bid",
	"bid_condition",
	"ask_size",
	"ask_exchange",
	"ask",
	"ask_condition",
	"date",
}

// wireHeader is the vendor envelope header.
type wireHeader struct {
	LatencyMS int      `json:"latency_ms"`
	Format    []string `json:"format"`
}

// optionPayload is the option-chain envelope.
type optionPayload struct {
	Header   *wireHeader `json:"header"`
	Response []wireEntry `json:"response"`
}

// wireEntry is one contract with its raw tick tuples. Tuples stay as raw
// bytes here so each one can be decoded with positional error context and
// without an intermediate generic tree.
type wireEntry struct {
	Ticks    []json.RawMessage `json:"ticks"`
	Contract *wireContract     `json:"contract"`
}

// wireContract is the vendor contract object.
type wireContract struct {
	Root       string `json:"root"`
	Expiration uint32 `json:"expiration"`
	Strike     uint32 `json:"strike"`
	Right      string `json:"right"`
}

// stockPayload is the underlying-quote envelope.
type stockPayload struct {
	Header   *wireHeader       `json:"header"`
	Response []json.RawMessage `json:"response"`
}
