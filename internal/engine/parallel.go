package engine

import (
	"sync"

	"github.com/ashler-herrick/betedge/internal/filter"
	"github.com/ashler-herrick/betedge/internal/join"
	"github.com/ashler-herrick/betedge/internal/model"
)

// contractResult records the fate of one contract's ticks.
type contractResult struct {
	kept          []int // tick indexes that passed both gates, in payload order
	droppedExpiry int
	unmatched     int
	droppedBand   int
}

// filterContracts runs the admission filter over every contract and
// returns one result per contract, index-aligned with the input. With
// workers > 1 contracts are filtered concurrently; the caller merges
// results in contract order, so the artifact never depends on
// scheduling.
func filterContracts(contracts []model.Contract, series model.QuoteSeries, p model.Params, workers int) []contractResult {
	results := make([]contractResult, len(contracts))

	if workers <= 1 || len(contracts) < 2 {
		for i := range contracts {
			results[i] = filterContract(contracts[i], series, p)
		}
		return results
	}

	// Semaphore for bounded concurrency. Each goroutine writes only its
	// own slot.
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range contracts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = filterContract(contracts[i], series, p)
		}(i)
	}
	wg.Wait()

	return results
}

// filterContract walks one contract's ticks through the expiration
// gate, the asof quote match, and the moneyness band.
func filterContract(c model.Contract, series model.QuoteSeries, p model.Params) contractResult {
	var res contractResult

	gate := filter.ForContract(c.Key, p)
	if !gate.OK() {
		res.droppedExpiry = len(c.Ticks)
		return res
	}

	cur := join.NewCursor(series)
	for i := range c.Ticks {
		und, ok := cur.Price(c.Ticks[i].Time())
		if !ok {
			res.unmatched++
			continue
		}
		if !gate.Admit(und) {
			res.droppedBand++
			continue
		}
		res.kept = append(res.kept, i)
	}
	return res
}
