package decode

import (
	"encoding/json"

	"github.com/ashler-herrick/betedge/internal/model"
)

// Stock decodes the underlying-quote payload into ticks in input order.
// Time ordering is not checked here; the joiner's series constructor
// enforces it.
func Stock(data []byte) ([]model.Tick, error) {
	var p stockPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, classify(model.PayloadStock, err)
	}
	if err := checkEnvelope(model.PayloadStock, p.Header, p.Response != nil); err != nil {
		return nil, err
	}

	ticks := make([]model.Tick, 0, len(p.Response))
	scratch := make([]json.Number, 0, tupleLen)
	for i, raw := range p.Response {
		scratch = scratch[:0]
		if err := json.Unmarshal(raw, &scratch); err != nil {
			return nil, tupleError(model.PayloadStock, i, err)
		}
		tick, field, err := tupleTick(scratch)
		if err != nil {
			return nil, &model.SchemaError{
				Payload: model.PayloadStock,
				Field:   field,
				Index:   i,
				Reason:  err.Error(),
			}
		}
		ticks = append(ticks, tick)
	}
	return ticks, nil
}
