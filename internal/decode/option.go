package decode

import (
	"encoding/json"

	"github.com/ashler-herrick/betedge/internal/model"
)

// Options decodes the option-chain payload into contracts in input order.
// An entry with an empty ticks array is valid and yields a contract with
// zero ticks.
func Options(data []byte) ([]model.Contract, error) {
	var p optionPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, classify(model.PayloadOption, err)
	}
	if err := checkEnvelope(model.PayloadOption, p.Header, p.Response != nil); err != nil {
		return nil, err
	}

	contracts := make([]model.Contract, 0, len(p.Response))
	scratch := make([]json.Number, 0, tupleLen)
	for i, entry := range p.Response {
		if entry.Contract == nil {
			return nil, &model.SchemaError{
				Payload: model.PayloadOption,
				Field:   "contract",
				Index:   i,
				Reason:  "missing",
			}
		}
		key, field, err := contractKey(entry.Contract)
		if err != nil {
			return nil, &model.SchemaError{
				Payload: model.PayloadOption,
				Field:   field,
				Index:   i,
				Reason:  err.Error(),
			}
		}

		ticks := make([]model.Tick, 0, len(entry.Ticks))
		for _, raw := range entry.Ticks {
			scratch = scratch[:0]
			if err := json.Unmarshal(raw, &scratch); err != nil {
				return nil, tupleError(model.PayloadOption, i, err)
			}
			tick, field, err := tupleTick(scratch)
			if err != nil {
				return nil, &model.SchemaError{
					Payload: model.PayloadOption,
					Field:   field,
					Index:   i,
					Reason:  err.Error(),
				}
			}
			ticks = append(ticks, tick)
		}
		contracts = append(contracts, model.Contract{Key: key, Ticks: ticks})
	}
	return contracts, nil
}
