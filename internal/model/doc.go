// Package model defines the entry types shared across the filtering pipeline.
//
// Conventions:
//   - Prices: float32 in price units (dollars)
//   - Strikes: uint32 in minor units (cents, 10000 = 100.00)
//   - Dates: uint32 YYYYMMDD (Date)
//   - Timestamps: uint32 milliseconds since midnight ET, combined with the
//     trade date into a uint64 ordering key (TimeKey)
package model
