// Package scenario generates synthetic vendor payloads for exercising
// the filtering pipeline without vendor access.
//
// A scenario is described by a YAML file: a trading session window, a
// random-walk underlying, and an option chain grid. Generation is
// seeded and fully deterministic, so a scenario file pins its payload
// bytes and everything downstream of them.
package scenario
