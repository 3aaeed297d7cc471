package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/ashler-herrick/betedge/internal/model"
)

const msPerDay = 86_400_000

// classify maps an encoding/json failure onto the payload error taxonomy:
// type mismatches are shape violations, anything else (syntax, truncation)
// means the document never parsed.
func classify(payload string, err error) error {
	var se *model.SchemaError
	if errors.As(err, &se) {
		return se
	}
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		return &model.SchemaError{
			Payload: payload,
			Field:   typ.Field,
			Index:   -1,
			Reason:  fmt.Sprintf("unexpected %s", typ.Value),
		}
	}
	return &model.ParseError{Payload: payload, Err: err}
}

// tupleError contextualizes a failed tuple decode at a response position.
// The tuple bytes come out of an already-parsed document, so any failure
// here is a shape violation rather than a syntax one.
func tupleError(payload string, index int, err error) error {
	reason := err.Error()
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		reason = fmt.Sprintf("unexpected %s in tuple", typ.Value)
	}
	return &model.SchemaError{
		Payload: payload,
		Field:   "ticks",
		Index:   index,
		Reason:  reason,
	}
}

// checkEnvelope validates the parts shared by both payloads.
func checkEnvelope(payload string, h *wireHeader, hasResponse bool) error {
	if h == nil {
		return &model.SchemaError{Payload: payload, Field: "header", Index: -1, Reason: "missing"}
	}
	if len(h.Format) > 0 {
		if len(h.Format) != tupleLen {
			return &model.SchemaError{
				Payload: payload,
				Field:   "format",
				Index:   -1,
				Reason:  fmt.Sprintf("%d columns, want %d", len(h.Format), tupleLen),
			}
		}
		for i, name := range h.Format {
			if name != tupleColumns[i] {
				return &model.SchemaError{
					Payload: payload,
					Field:   "format",
					Index:   -1,
					Reason:  fmt.Sprintf("column %d is %q, want %q", i, name, tupleColumns[i]),
				}
			}
		}
	}
	if !hasResponse {
		return &model.SchemaError{Payload: payload, Field: "response", Index: -1, Reason: "missing"}
	}
	return nil
}

// contractKey validates and converts the vendor contract object.
// On failure it reports the offending field name.
func contractKey(c *wireContract) (model.ContractKey, string, error) {
	var key model.ContractKey
	if c.Root == "" {
		return key, "root", errors.New("must not be empty")
	}
	exp := model.Date(c.Expiration)
	if !exp.Valid() {
		return key, "expiration", fmt.Errorf("%d is not a valid YYYYMMDD date", c.Expiration)
	}
	right := model.Right(c.Right)
	if !right.Valid() {
		return key, "right", fmt.Errorf(`must be "C" or "P", got %q`, c.Right)
	}
	key = model.ContractKey{
		Root:       c.Root,
		Expiration: exp,
		Strike:     c.Strike,
		Right:      right,
	}
	return key, "", nil
}

// tupleTick converts one decoded tuple into a Tick.
// On failure it reports the offending column name.
func tupleTick(f []json.Number) (model.Tick, string, error) {
	var t model.Tick
	if len(f) != tupleLen {
		return t, "ticks", fmt.Errorf("tuple has %d fields, want %d", len(f), tupleLen)
	}

	ms, err := uintField(f[0], 32)
	if err != nil {
		return t, tupleColumns[0], err
	}
	if ms >= msPerDay {
		return t, tupleColumns[0], fmt.Errorf("%d exceeds one day", ms)
	}
	bidSize, err := uintField(f[1], 16)
	if err != nil {
		return t, tupleColumns[1], err
	}
	bidExch, err := uintField(f[2], 8)
	if err != nil {
		return t, tupleColumns[2], err
	}
	bid, err := priceField(f[3])
	if err != nil {
		return t, tupleColumns[3], err
	}
	bidCond, err := uintField(f[4], 8)
	if err != nil {
		return t, tupleColumns[4], err
	}
	askSize, err := uintField(f[5], 16)
	if err != nil {
		return t, tupleColumns[5], err
	}
	askExch, err := uintField(f[6], 8)
	if err != nil {
		return t, tupleColumns[6], err
	}
	ask, err := priceField(f[7])
	if err != nil {
		return t, tupleColumns[7], err
	}
	askCond, err := uintField(f[8], 8)
	if err != nil {
		return t, tupleColumns[8], err
	}
	date, err := uintField(f[9], 32)
	if err != nil {
		return t, tupleColumns[9], err
	}
	if !model.Date(date).Valid() {
		return t, tupleColumns[9], fmt.Errorf("%d is not a valid YYYYMMDD date", date)
	}

	t = model.Tick{
		MsOfDay:      uint32(ms),
		BidPrice:     bid,
		AskPrice:     ask,
		Date:         model.Date(date),
		BidSize:      uint16(bidSize),
		AskSize:      uint16(askSize),
		BidExchange:  uint8(bidExch),
		BidCondition: uint8(bidCond),
		AskExchange:  uint8(askExch),
		AskCondition: uint8(askCond),
	}
	return t, "", nil
}

// uintField parses an integral JSON number into the given bit width.
// Negative, fractional, and oversized values are all rejected.
func uintField(n json.Number, bits int) (uint64, error) {
	v, err := strconv.ParseUint(n.String(), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%q is not an unsigned %d-bit integer", n.String(), bits)
	}
	return v, nil
}

// priceField parses a JSON number into a finite non-negative float32.
func priceField(n json.Number) (float32, error) {
	v, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", n.String())
	}
	f := float32(v)
	if v < 0 || math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
		return 0, fmt.Errorf("%v is out of range", v)
	}
	return f, nil
}
