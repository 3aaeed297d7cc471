// Package engine runs the option filtering pipeline end to end.
//
// A run decodes the two vendor payloads, indexes the stock quotes for
// time matching, walks every contract's ticks through the admission
// filter, and encodes the surviving rows into a single columnar
// artifact. Runs are deterministic: the same inputs and parameters
// produce the same bytes regardless of parallelism.
//
// Conventions:
//   - Contracts are processed in ascending ContractKey order in every
//     mode; ticks keep payload order within a contract.
//   - Failures surface as typed errors from internal/model; no partial
//     artifact is returned alongside an error.
//   - An empty artifact (schema, zero rows) is a valid success.
package engine
