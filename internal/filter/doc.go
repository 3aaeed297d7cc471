// Package filter applies the two admission gates to joined rows.
//
// The DTE gate rejects a whole contract when its expiration is in the past
// or beyond the max-DTE window. The moneyness gate admits a row when the
// strike sits within a √DTE-scaled percentage band around the matched
// underlying price, widening the band for longer-dated contracts.
package filter
