// Package join resolves the underlying price in effect at each option tick.
//
// The match is an asof lookup: the quote with the greatest timestamp at or
// before the tick's timestamp. Ticks with no quote at or before them have no
// match and are dropped by the caller.
package join
