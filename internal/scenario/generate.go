package scenario

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/ashler-herrick/betedge/internal/model"
)

// Payloads is one matched pair of synthetic vendor payloads.
type Payloads struct {
	Option []byte
	Stock  []byte
}

type headerJSON struct {
	LatencyMS int      `json:"latency_ms"`
	Format    []string `json:"format"`
}

type contractJSON struct {
	Root       string `json:"root"`
	Expiration uint32 `json:"expiration"`
	Strike     uint32 `json:"strike"`
	Right      string `json:"right"`
}

type entryJSON struct {
	Ticks    [][]any      `json:"ticks"`
	Contract contractJSON `json:"contract"`
}

type optionJSON struct {
	Header   headerJSON  `json:"header"`
	Response []entryJSON `json:"response"`
}

type stockJSON struct {
	Header   headerJSON `json:"header"`
	Response [][]any    `json:"response"`
}

// tupleFormat lists the vendor tuple columns in wire order.
func tupleFormat() []string {
	return []string{
		"ms_of_day", "bid_size", "bid_exchange", "bid", "bid_condition",
		"ask_size", "ask_exchange", "ask", "ask_condition", "date",
	}
}

var (
	exchangeCodes  = []int{1, 5, 47, 65}
	conditionCodes = []int{0, 50, 115}
)

// Generate builds one deterministic payload pair for cfg. The same
// config, seed included, always yields identical bytes.
func Generate(cfg *Config) (Payloads, error) {
	if err := cfg.Validate(); err != nil {
		return Payloads{}, err
	}

	g := &generator{cfg: cfg, rng: rand.New(rand.NewSource(int64(cfg.Seed)))}

	option, err := json.Marshal(optionJSON{
		Header:   headerJSON{LatencyMS: g.latency(), Format: tupleFormat()},
		Response: g.optionEntries(),
	})
	if err != nil {
		return Payloads{}, fmt.Errorf("marshal option payload: %w", err)
	}

	stock, err := json.Marshal(stockJSON{
		Header:   headerJSON{LatencyMS: g.latency(), Format: tupleFormat()},
		Response: g.stockRows(),
	})
	if err != nil {
		return Payloads{}, fmt.Errorf("marshal stock payload: %w", err)
	}

	return Payloads{Option: option, Stock: stock}, nil
}

type generator struct {
	cfg *Config
	rng *rand.Rand
}

func (g *generator) latency() int {
	return 20 + g.rng.Intn(150)
}

// optionEntries walks the chain grid and emits both rights per strike.
func (g *generator) optionEntries() []entryJSON {
	var entries []entryJSON
	for _, exp := range g.cfg.Chain.Expirations {
		for s := int(g.cfg.Chain.StrikeLow); s <= int(g.cfg.Chain.StrikeHigh); s += int(g.cfg.Chain.StrikeStep) {
			for _, right := range []string{"C", "P"} {
				entries = append(entries, entryJSON{
					Ticks: g.legTicks(uint32(s), right),
					Contract: contractJSON{
						Root:       g.cfg.Root,
						Expiration: exp,
						Strike:     uint32(s),
						Right:      right,
					},
				})
			}
		}
	}
	return entries
}

// legTicks emits one contract's ticks, time-sorted within the session.
func (g *generator) legTicks(strike uint32, right string) [][]any {
	n := g.cfg.Chain.TicksPerLeg
	times := make([]int, n)
	for i := range times {
		times[i] = g.cfg.Session.StartMS + g.rng.Intn(g.cfg.Session.SpanMS)
	}
	sort.Ints(times)

	// Crude premium: intrinsic value at the session open plus noise.
	intrinsic := g.cfg.Underlying.Open - float64(strike)/model.StrikeScale
	if right == "P" {
		intrinsic = -intrinsic
	}
	if intrinsic < 0 {
		intrinsic = 0
	}

	rows := make([][]any, n)
	for i, ms := range times {
		bid := cents(intrinsic + 0.05 + g.rng.Float64()*2)
		ask := cents(bid + 0.05 + g.rng.Float64()*0.10)
		rows[i] = g.tuple(ms, bid, ask)
	}
	return rows
}

// stockRows emits the underlying quote walk at a fixed cadence.
func (g *generator) stockRows() [][]any {
	half := g.cfg.Underlying.Spread / 2
	mid := g.cfg.Underlying.Open

	rows := make([][]any, g.cfg.Underlying.Count)
	for i := range rows {
		ms := g.cfg.Session.StartMS + i*g.cfg.Underlying.StepMS
		mid += (g.rng.Float64()*2 - 1) * g.cfg.Underlying.WalkStep
		if mid < half+0.01 {
			mid = half + 0.01
		}
		rows[i] = g.tuple(ms, cents(mid-half), cents(mid+half))
	}
	return rows
}

func (g *generator) tuple(ms int, bid, ask float64) []any {
	return []any{
		ms,
		1 + g.rng.Intn(200),
		exchangeCodes[g.rng.Intn(len(exchangeCodes))],
		bid,
		conditionCodes[g.rng.Intn(len(conditionCodes))],
		1 + g.rng.Intn(200),
		exchangeCodes[g.rng.Intn(len(exchangeCodes))],
		ask,
		conditionCodes[g.rng.Intn(len(conditionCodes))],
		g.cfg.Date,
	}
}

// cents rounds a dollar amount to the nearest cent so payload numbers
// stay short.
func cents(x float64) float64 {
	return math.Round(x*100) / 100
}
