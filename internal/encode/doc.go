// Package encode serializes surviving rows into the two output layouts.
//
// Layouts (one logical schema each, byte-deterministic for identical input):
//   - Arrow IPC stream: self-describing and appendable, for message-transport
//     hand-off
//   - Parquet: zstd-compressed columnar file, for at-rest storage and
//     analytical reads
//
// Builders accumulate rows column-wise (structure-of-arrays) and seal them
// into a single record batch. Appends never fail; errors surface only at
// serialization time.
package encode
