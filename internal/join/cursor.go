package join

import (
	"sort"

	"github.com/ashler-herrick/betedge/internal/model"
)

// Cursor walks one quote series in step with ascending lookup timestamps,
// giving O(n+m) total work per contract. Lookups that regress in time fall
// back to a binary search instead of returning a stale quote. Not safe for
// concurrent use; each contract gets its own Cursor.
type Cursor struct {
	series model.QuoteSeries
	pos    int // greatest index with Times[pos] <= last lookup, -1 initially
}

// NewCursor returns a cursor positioned before the first quote.
func NewCursor(series model.QuoteSeries) *Cursor {
	return &Cursor{series: series, pos: -1}
}

// Price returns the midpoint of the quote in effect at the given timestamp.
// Equal-timestamp quotes resolve to the last in input order. The second
// return is false when no quote exists at or before the timestamp.
func (c *Cursor) Price(at uint64) (float32, bool) {
	times := c.series.Times

	if c.pos >= 0 && times[c.pos] > at {
		// Ticks are expected time-ordered; re-seek rather than mis-match
		// when they are not.
		c.pos = sort.Search(len(times), func(i int) bool { return times[i] > at }) - 1
	}
	for c.pos+1 < len(times) && times[c.pos+1] <= at {
		c.pos++
	}

	if c.pos < 0 {
		return 0, false
	}
	return c.series.Prices[c.pos], true
}
