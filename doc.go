// Package betedge filters tick-level option chains against concurrent
// stock quotes and encodes the survivors as columnar artifacts.
//
// The package wraps the internal pipeline behind four entry points.
// FilterToIPC and FilterToParquet run the full pipeline: decode the two
// vendor payloads, match every option tick to the prevailing stock
// quote, drop ticks outside the expiration window or the moneyness
// band, and encode what remains. QuotesToIPC and QuotesToParquet
// re-encode a stock quote payload without filtering.
//
// All four are pure functions of their inputs: the same payloads,
// parameters, and options produce identical artifact bytes, including
// under WithParallelism.
package betedge
