package betedge

import (
	"github.com/ashler-herrick/betedge/internal/engine"
)

// FilterToIPC runs the filtering pipeline over the vendor option and
// stock payloads and returns the surviving ticks as an Arrow IPC
// stream. The stream always carries the full schema, even when no tick
// survives.
func FilterToIPC(optionData, stockData []byte, p Params, opts ...Option) ([]byte, error) {
	return engine.Filter(optionData, stockData, p, engine.EncodingIPC, buildOptions(opts))
}

// FilterToParquet runs the filtering pipeline and returns the surviving
// ticks as a zstd-compressed Parquet file.
func FilterToParquet(optionData, stockData []byte, p Params, opts ...Option) ([]byte, error) {
	return engine.Filter(optionData, stockData, p, engine.EncodingParquet, buildOptions(opts))
}

// QuotesToIPC re-encodes a vendor stock quote payload as an Arrow IPC
// stream, preserving payload order.
func QuotesToIPC(stockData []byte, opts ...Option) ([]byte, error) {
	return engine.Quotes(stockData, engine.EncodingIPC, buildOptions(opts))
}

// QuotesToParquet re-encodes a vendor stock quote payload as a
// zstd-compressed Parquet file, preserving payload order.
func QuotesToParquet(stockData []byte, opts ...Option) ([]byte, error) {
	return engine.Quotes(stockData, engine.EncodingParquet, buildOptions(opts))
}
