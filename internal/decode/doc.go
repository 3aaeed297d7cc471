// Package decode parses ThetaData-style vendor payloads into model records.
//
// Both payloads share one envelope:
//
//	{"header": {"latency_ms": N, "format": [...]}, "response": [...]}
//
// The option response is an array of entries, each a contract object plus a
// nested array of quote tuples; the stock response is a flat array of quote
// tuples. A tuple is a 10-element JSON array in fixed column order:
//
//	ms_of_day, bid_size, bid_exchange, bid, bid_condition,
//	ask_size, ask_exchange, ask, ask_condition, date
//
// Malformed JSON is a ParseError; a well-formed document with the wrong
// shape, a mistyped field, or an out-of-range value is a SchemaError.
package decode
