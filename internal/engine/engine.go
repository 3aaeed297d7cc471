package engine

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/ashler-herrick/betedge/internal/decode"
	"github.com/ashler-herrick/betedge/internal/encode"
	"github.com/ashler-herrick/betedge/internal/model"
)

// Encoding selects the artifact layout produced by a run.
type Encoding int

const (
	// EncodingIPC produces an Arrow IPC stream.
	EncodingIPC Encoding = iota
	// EncodingParquet produces a zstd-compressed Parquet file.
	EncodingParquet
)

func (e Encoding) String() string {
	switch e {
	case EncodingIPC:
		return "ipc"
	case EncodingParquet:
		return "parquet"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Options tunes a run. The zero value runs sequentially with the
// default logger and allocator.
type Options struct {
	Parallelism int              // workers for per-contract filtering; <=1 runs sequentially
	Logger      *slog.Logger     // nil falls back to slog.Default
	Alloc       memory.Allocator // nil falls back to memory.DefaultAllocator
	Stats       *Stats           // populated on success when non-nil
}

func (o Options) normalize() Options {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Alloc == nil {
		o.Alloc = memory.DefaultAllocator
	}
	return o
}

// Filter decodes the option and stock payloads, joins every option tick
// to the prevailing stock quote, applies the admission filter, and
// encodes the surviving rows with enc.
func Filter(optionData, stockData []byte, p model.Params, enc Encoding, opts Options) ([]byte, error) {
	opts = opts.normalize()
	start := time.Now()

	if err := p.Validate(); err != nil {
		return nil, err
	}

	contracts, err := decode.Options(optionData)
	if err != nil {
		return nil, err
	}
	quotes, err := decode.Stock(stockData)
	if err != nil {
		return nil, err
	}
	series, err := model.NewQuoteSeries(quotes)
	if err != nil {
		return nil, err
	}

	// Canonical contract order makes sequential and parallel runs
	// produce identical artifacts. Stable sort keeps payload order for
	// duplicate keys.
	sort.SliceStable(contracts, func(i, j int) bool {
		return contracts[i].Key.Less(contracts[j].Key)
	})

	st := Stats{Contracts: len(contracts), Quotes: series.Len()}
	for i := range contracts {
		st.Ticks += len(contracts[i].Ticks)
	}

	results := filterContracts(contracts, series, p, opts.Parallelism)

	b := encode.NewTickBuilder(opts.Alloc)
	defer b.Release()

	for i := range contracts {
		res := &results[i]
		st.DroppedExpiry += res.droppedExpiry
		st.Unmatched += res.unmatched
		st.DroppedBand += res.droppedBand
		if len(res.kept) == 0 {
			continue
		}
		b.Reserve(len(res.kept))
		for _, ti := range res.kept {
			b.Append(contracts[i].Key, contracts[i].Ticks[ti])
		}
	}
	st.Rows = b.Len()

	rec := b.NewRecord()
	defer rec.Release()

	out, err := encodeRecord(rec, enc, opts.Alloc)
	if err != nil {
		return nil, err
	}
	st.Bytes = len(out)

	opts.Logger.Info("filter run complete",
		"contracts", st.Contracts,
		"ticks", st.Ticks,
		"quotes", st.Quotes,
		"rows", st.Rows,
		"dropped_expiry", st.DroppedExpiry,
		"unmatched", st.Unmatched,
		"dropped_band", st.DroppedBand,
		"encoding", enc.String(),
		"bytes", st.Bytes,
		"duration", time.Since(start),
	)

	if opts.Stats != nil {
		*opts.Stats = st
	}
	return out, nil
}

// Quotes re-encodes the stock quote payload as a columnar artifact
// without filtering. Rows keep payload order.
func Quotes(stockData []byte, enc Encoding, opts Options) ([]byte, error) {
	opts = opts.normalize()
	start := time.Now()

	quotes, err := decode.Stock(stockData)
	if err != nil {
		return nil, err
	}

	b := encode.NewQuoteBuilder(opts.Alloc)
	defer b.Release()
	b.Reserve(len(quotes))
	for _, tk := range quotes {
		b.Append(tk)
	}

	rec := b.NewRecord()
	defer rec.Release()

	out, err := encodeRecord(rec, enc, opts.Alloc)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("quote export complete",
		"quotes", len(quotes),
		"encoding", enc.String(),
		"bytes", len(out),
		"duration", time.Since(start),
	)

	if opts.Stats != nil {
		*opts.Stats = Stats{Quotes: len(quotes), Rows: len(quotes), Bytes: len(out)}
	}
	return out, nil
}

// encodeRecord dispatches on the artifact layout.
func encodeRecord(rec arrow.Record, enc Encoding, mem memory.Allocator) ([]byte, error) {
	switch enc {
	case EncodingIPC:
		return encode.IPCBytes(rec, mem)
	case EncodingParquet:
		return encode.ParquetBytes(rec, mem)
	default:
		return nil, &model.ArgumentError{Param: "encoding", Reason: fmt.Sprintf("unknown encoding %d", int(enc))}
	}
}
