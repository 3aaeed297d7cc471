package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"

	"github.com/ashler-herrick/betedge/internal/model"
)

// Quotes at 09:30:00, 09:31:00, 09:32:00 with midpoints 100.00,
// 100.50, 99.50.
const stockPayload = `{
	"header": {"latency_ms": 40},
	"response": [
		[34200000, 5, 47, 99.90, 50, 5, 47, 100.10, 50, 20231110],
		[34260000, 5, 47, 100.40, 50, 5, 47, 100.60, 50, 20231110],
		[34320000, 5, 47, 99.40, 50, 5, 47, 99.60, 50, 20231110]
	]
}`

// Five contracts, deliberately out of key order. Against CurrentDate
// 20231110, MaxDTE 30, BasePct 0.10 the 20231117 chain has a 7-day
// band of 0.10*sqrt(7) = 26.46% around the prevailing midpoint:
//
//   strike 13000: |130-100| = 30 outside the band, tick dropped
//   strike 10000: all three ticks admitted
//   strike 10000 exp 20241220: beyond MaxDTE, both ticks dropped
//   strike 12600: first tick precedes every quote, second admitted
//   strike 10000 exp 20231109: already expired, tick dropped
const optionPayload = `{
	"header": {"latency_ms": 100, "format": ["ms_of_day", "bid_size", "bid_exchange", "bid", "bid_condition", "ask_size", "ask_exchange", "ask", "ask_condition", "date"]},
	"response": [
		{
			"ticks": [
				[34200000, 20, 47, 0.45, 50, 18, 47, 0.55, 50, 20231110]
			],
			"contract": {"root": "AAPL", "expiration": 20231117, "strike": 13000, "right": "C"}
		},
		{
			"ticks": [
				[34200000, 10, 47, 2.40, 50, 12, 47, 2.60, 50, 20231110],
				[34250000, 11, 47, 2.45, 50, 12, 47, 2.65, 50, 20231110],
				[34290000, 9, 47, 2.80, 50, 10, 47, 3.00, 50, 20231110]
			],
			"contract": {"root": "AAPL", "expiration": 20231117, "strike": 10000, "right": "C"}
		},
		{
			"ticks": [
				[34200000, 5, 47, 9.80, 50, 5, 47, 10.20, 50, 20231110],
				[34260000, 5, 47, 9.90, 50, 5, 47, 10.30, 50, 20231110]
			],
			"contract": {"root": "AAPL", "expiration": 20241220, "strike": 10000, "right": "C"}
		},
		{
			"ticks": [
				[34100000, 15, 47, 25.80, 50, 14, 47, 26.20, 50, 20231110],
				[34200000, 15, 47, 25.90, 50, 14, 47, 26.30, 50, 20231110]
			],
			"contract": {"root": "AAPL", "expiration": 20231117, "strike": 12600, "right": "P"}
		},
		{
			"ticks": [
				[34200000, 8, 47, 0.01, 50, 8, 47, 0.03, 50, 20231110]
			],
			"contract": {"root": "AAPL", "expiration": 20231109, "strike": 10000, "right": "C"}
		}
	]
}`

var testParams = model.Params{CurrentDate: 20231110, MaxDTE: 30, BasePct: 0.10}

func quietOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestFilterIPC(t *testing.T) {
	opts := quietOptions()
	raw, err := Filter([]byte(optionPayload), []byte(stockPayload), testParams, EncodingIPC, opts)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}

	rd, err := ipc.NewReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer rd.Release()

	if !rd.Next() {
		t.Fatalf("stream has no batch: %v", rd.Err())
	}
	rec := rd.Record()
	if rec.NumRows() != 4 || rec.NumCols() != 14 {
		t.Fatalf("record = %dx%d, want 4x14", rec.NumRows(), rec.NumCols())
	}

	// Rows come out in contract key order, ticks in payload order.
	wantMs := []uint32{34200000, 34250000, 34290000, 34200000}
	wantStrike := []uint32{10000, 10000, 10000, 12600}
	wantRight := []string{"C", "C", "C", "P"}

	msCol := rec.Column(0).(*array.Uint32)
	strikeCol := rec.Column(12).(*array.Uint32)
	rightCol := rec.Column(13).(*array.String)
	rootCol := rec.Column(10).(*array.String)
	expCol := rec.Column(11).(*array.Uint32)

	for i := 0; i < 4; i++ {
		if msCol.Value(i) != wantMs[i] {
			t.Errorf("ms_of_day[%d] = %d, want %d", i, msCol.Value(i), wantMs[i])
		}
		if strikeCol.Value(i) != wantStrike[i] {
			t.Errorf("strike[%d] = %d, want %d", i, strikeCol.Value(i), wantStrike[i])
		}
		if rightCol.Value(i) != wantRight[i] {
			t.Errorf("right[%d] = %q, want %q", i, rightCol.Value(i), wantRight[i])
		}
		if rootCol.Value(i) != "AAPL" {
			t.Errorf("root[%d] = %q, want AAPL", i, rootCol.Value(i))
		}
		if expCol.Value(i) != 20231117 {
			t.Errorf("expiration[%d] = %d, want 20231117", i, expCol.Value(i))
		}
	}
}

func TestFilterStats(t *testing.T) {
	var st Stats
	opts := quietOptions()
	opts.Stats = &st

	if _, err := Filter([]byte(optionPayload), []byte(stockPayload), testParams, EncodingIPC, opts); err != nil {
		t.Fatalf("Filter: %v", err)
	}

	if st.Contracts != 5 {
		t.Errorf("Contracts = %d, want 5", st.Contracts)
	}
	if st.Ticks != 9 {
		t.Errorf("Ticks = %d, want 9", st.Ticks)
	}
	if st.Quotes != 3 {
		t.Errorf("Quotes = %d, want 3", st.Quotes)
	}
	if st.DroppedExpiry != 3 {
		t.Errorf("DroppedExpiry = %d, want 3", st.DroppedExpiry)
	}
	if st.Unmatched != 1 {
		t.Errorf("Unmatched = %d, want 1", st.Unmatched)
	}
	if st.DroppedBand != 1 {
		t.Errorf("DroppedBand = %d, want 1", st.DroppedBand)
	}
	if st.Rows != 4 {
		t.Errorf("Rows = %d, want 4", st.Rows)
	}
	if st.Bytes == 0 {
		t.Error("Bytes = 0, want > 0")
	}
	if got := st.Rows + st.DroppedExpiry + st.Unmatched + st.DroppedBand; got != st.Ticks {
		t.Errorf("tick conservation: %d accounted, want %d", got, st.Ticks)
	}
}

func TestFilterParquet(t *testing.T) {
	opts := quietOptions()
	raw, err := Filter([]byte(optionPayload), []byte(stockPayload), testParams, EncodingParquet, opts)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}

	mem := memory.NewGoAllocator()
	tbl, err := pqarrow.ReadTable(context.Background(), bytes.NewReader(raw),
		parquet.NewReaderProperties(mem), pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	defer tbl.Release()

	if tbl.NumRows() != 4 {
		t.Fatalf("NumRows = %d, want 4", tbl.NumRows())
	}
	strikeCol := tbl.Column(12).Data().Chunks()[0].(*array.Uint32)
	if got := strikeCol.Value(3); got != 12600 {
		t.Errorf("strike[3] = %d, want 12600", got)
	}
}

func TestFilterParallelMatchesSequential(t *testing.T) {
	for _, enc := range []Encoding{EncodingIPC, EncodingParquet} {
		t.Run(enc.String(), func(t *testing.T) {
			seqOpts := quietOptions()
			seq, err := Filter([]byte(optionPayload), []byte(stockPayload), testParams, enc, seqOpts)
			if err != nil {
				t.Fatalf("sequential Filter: %v", err)
			}

			parOpts := quietOptions()
			parOpts.Parallelism = 4
			par, err := Filter([]byte(optionPayload), []byte(stockPayload), testParams, enc, parOpts)
			if err != nil {
				t.Fatalf("parallel Filter: %v", err)
			}

			if !bytes.Equal(seq, par) {
				t.Error("parallel artifact differs from sequential")
			}
		})
	}
}

func TestFilterEmptyResult(t *testing.T) {
	// MaxDTE 3 leaves no admissible contract; the run still succeeds
	// with a schema-bearing, zero-row artifact.
	p := model.Params{CurrentDate: 20231110, MaxDTE: 3, BasePct: 0.10}

	var st Stats
	opts := quietOptions()
	opts.Stats = &st

	raw, err := Filter([]byte(optionPayload), []byte(stockPayload), p, EncodingIPC, opts)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if st.Rows != 0 || st.DroppedExpiry != 9 {
		t.Errorf("stats = %+v, want Rows 0 DroppedExpiry 9", st)
	}

	rd, err := ipc.NewReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer rd.Release()
	if rd.Schema().NumFields() != 14 {
		t.Errorf("NumFields = %d, want 14", rd.Schema().NumFields())
	}
	if rd.Next() && rd.Record().NumRows() != 0 {
		t.Errorf("empty result batch has %d rows", rd.Record().NumRows())
	}
}

func TestFilterArgumentErrors(t *testing.T) {
	opts := quietOptions()

	bad := model.Params{CurrentDate: 20231110, MaxDTE: 30, BasePct: 0}
	_, err := Filter([]byte(optionPayload), []byte(stockPayload), bad, EncodingIPC, opts)
	var ae *model.ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *model.ArgumentError", err)
	}
	if ae.Param != "base_pct" {
		t.Errorf("Param = %q, want base_pct", ae.Param)
	}

	_, err = Filter([]byte(optionPayload), []byte(stockPayload), testParams, Encoding(7), opts)
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *model.ArgumentError", err)
	}
	if ae.Param != "encoding" {
		t.Errorf("Param = %q, want encoding", ae.Param)
	}
}

func TestFilterBadPayloads(t *testing.T) {
	opts := quietOptions()

	tests := []struct {
		name   string
		option string
		stock  string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "truncated option payload",
			option: `{"header":`,
			stock:  stockPayload,
			check: func(t *testing.T, err error) {
				var pe *model.ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("err = %v, want *model.ParseError", err)
				}
			},
		},
		{
			name:   "option response not an array",
			option: `{"header": {"latency_ms": 1}, "response": {}}`,
			stock:  stockPayload,
			check: func(t *testing.T, err error) {
				var se *model.SchemaError
				if !errors.As(err, &se) {
					t.Fatalf("err = %v, want *model.SchemaError", err)
				}
			},
		},
		{
			name:   "stock quotes out of order",
			option: optionPayload,
			stock: `{
				"header": {"latency_ms": 1},
				"response": [
					[34260000, 5, 47, 100.40, 50, 5, 47, 100.60, 50, 20231110],
					[34200000, 5, 47, 99.90, 50, 5, 47, 100.10, 50, 20231110]
				]
			}`,
			check: func(t *testing.T, err error) {
				var se *model.SchemaError
				if !errors.As(err, &se) {
					t.Fatalf("err = %v, want *model.SchemaError", err)
				}
				if se.Payload != model.PayloadStock {
					t.Errorf("Payload = %q, want %q", se.Payload, model.PayloadStock)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Filter([]byte(tt.option), []byte(tt.stock), testParams, EncodingIPC, opts)
			if err == nil {
				t.Fatal("Filter succeeded, want error")
			}
			tt.check(t, err)
		})
	}
}

func TestQuotes(t *testing.T) {
	var st Stats
	opts := quietOptions()
	opts.Stats = &st

	raw, err := Quotes([]byte(stockPayload), EncodingIPC, opts)
	if err != nil {
		t.Fatalf("Quotes: %v", err)
	}
	if st.Quotes != 3 || st.Rows != 3 {
		t.Errorf("stats = %+v, want Quotes 3 Rows 3", st)
	}

	rd, err := ipc.NewReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer rd.Release()

	if !rd.Next() {
		t.Fatalf("stream has no batch: %v", rd.Err())
	}
	rec := rd.Record()
	if rec.NumRows() != 3 || rec.NumCols() != 10 {
		t.Fatalf("record = %dx%d, want 3x10", rec.NumRows(), rec.NumCols())
	}

	bidCol := rec.Column(3).(*array.Float32)
	wantBid := []float32{99.90, 100.40, 99.40}
	for i, want := range wantBid {
		if got := bidCol.Value(i); got != want {
			t.Errorf("bid_price[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestQuotesParquet(t *testing.T) {
	opts := quietOptions()
	raw, err := Quotes([]byte(stockPayload), EncodingParquet, opts)
	if err != nil {
		t.Fatalf("Quotes: %v", err)
	}

	mem := memory.NewGoAllocator()
	tbl, err := pqarrow.ReadTable(context.Background(), bytes.NewReader(raw),
		parquet.NewReaderProperties(mem), pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	defer tbl.Release()

	if tbl.NumRows() != 3 || tbl.NumCols() != 10 {
		t.Fatalf("table = %dx%d, want 3x10", tbl.NumRows(), tbl.NumCols())
	}
}

func TestEncodingString(t *testing.T) {
	if got := EncodingIPC.String(); got != "ipc" {
		t.Errorf("EncodingIPC = %q, want ipc", got)
	}
	if got := EncodingParquet.String(); got != "parquet" {
		t.Errorf("EncodingParquet = %q, want parquet", got)
	}
}
