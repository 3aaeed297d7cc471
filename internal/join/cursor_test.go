package join

import (
	"testing"

	"github.com/ashler-herrick/betedge/internal/model"
)

func series(t *testing.T, ticks []model.Tick) model.QuoteSeries {
	t.Helper()
	s, err := model.NewQuoteSeries(ticks)
	if err != nil {
		t.Fatalf("NewQuoteSeries: %v", err)
	}
	return s
}

func TestCursorAsof(t *testing.T) {
	s := series(t, []model.Tick{
		{MsOfDay: 34200000, Date: 20231117, BidPrice: 149.75, AskPrice: 149.85}, // mid 149.80
		{MsOfDay: 35100000, Date: 20231117, BidPrice: 148.95, AskPrice: 149.05}, // mid 149.00
	})
	c := NewCursor(s)

	tests := []struct {
		name string
		at   uint64
		want float32
	}{
		{"exact first timestamp", model.TimeKey(20231117, 34200000), 149.80},
		{"between quotes stays on prior", model.TimeKey(20231117, 34200001), 149.80},
		{"just before second", model.TimeKey(20231117, 35099999), 149.80},
		{"exact second timestamp", model.TimeKey(20231117, 35100000), 149.00},
		{"after last", model.TimeKey(20231117, 80000000), 149.00},
	}

	for _, tt := range tests {
		got, ok := c.Price(tt.at)
		if !ok {
			t.Fatalf("%s: no match", tt.name)
		}
		if got != tt.want {
			t.Errorf("%s: Price = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCursorTieBreak(t *testing.T) {
	s := series(t, []model.Tick{
		{MsOfDay: 100, Date: 20231117, BidPrice: 1.0, AskPrice: 1.0},
		{MsOfDay: 100, Date: 20231117, BidPrice: 2.0, AskPrice: 2.0},
		{MsOfDay: 200, Date: 20231117, BidPrice: 3.0, AskPrice: 3.0},
	})
	c := NewCursor(s)

	// Equal timestamps resolve to the last in input order.
	if got, ok := c.Price(model.TimeKey(20231117, 100)); !ok || got != 2.0 {
		t.Errorf("Price(100) = %v, %v; want 2.0, true", got, ok)
	}
	if got, ok := c.Price(model.TimeKey(20231117, 150)); !ok || got != 2.0 {
		t.Errorf("Price(150) = %v, %v; want 2.0, true", got, ok)
	}
	if got, ok := c.Price(model.TimeKey(20231117, 200)); !ok || got != 3.0 {
		t.Errorf("Price(200) = %v, %v; want 3.0, true", got, ok)
	}
}

func TestCursorBeforeFirstQuote(t *testing.T) {
	s := series(t, []model.Tick{
		{MsOfDay: 34200000, Date: 20231117, BidPrice: 100, AskPrice: 100},
	})
	c := NewCursor(s)

	if _, ok := c.Price(model.TimeKey(20231117, 30000000)); ok {
		t.Error("Price before first quote reported a match")
	}
	// The cursor must still match once timestamps catch up.
	if got, ok := c.Price(model.TimeKey(20231117, 34200000)); !ok || got != 100 {
		t.Errorf("Price after catch-up = %v, %v; want 100, true", got, ok)
	}
}

func TestCursorRegression(t *testing.T) {
	s := series(t, []model.Tick{
		{MsOfDay: 100, Date: 20231117, BidPrice: 1.0, AskPrice: 1.0},
		{MsOfDay: 200, Date: 20231117, BidPrice: 2.0, AskPrice: 2.0},
		{MsOfDay: 300, Date: 20231117, BidPrice: 3.0, AskPrice: 3.0},
	})
	c := NewCursor(s)

	if got, _ := c.Price(model.TimeKey(20231117, 300)); got != 3.0 {
		t.Fatalf("Price(300) = %v, want 3.0", got)
	}
	// Out-of-order lookup must re-seek, not return the stale position.
	if got, ok := c.Price(model.TimeKey(20231117, 150)); !ok || got != 1.0 {
		t.Errorf("Price(150) after regression = %v, %v; want 1.0, true", got, ok)
	}
	if _, ok := c.Price(model.TimeKey(20231117, 50)); ok {
		t.Error("Price(50) reported a match before the first quote")
	}
	if got, ok := c.Price(model.TimeKey(20231117, 250)); !ok || got != 2.0 {
		t.Errorf("Price(250) after recovery = %v, %v; want 2.0, true", got, ok)
	}
}

func TestCursorAcrossDates(t *testing.T) {
	s := series(t, []model.Tick{
		{MsOfDay: 50000000, Date: 20231116, BidPrice: 99, AskPrice: 101}, // mid 100
		{MsOfDay: 34200000, Date: 20231117, BidPrice: 101, AskPrice: 103},
	})
	c := NewCursor(s)

	// Early next-day tick matches the prior day's last quote.
	if got, ok := c.Price(model.TimeKey(20231117, 1000)); !ok || got != 100 {
		t.Errorf("cross-date Price = %v, %v; want 100, true", got, ok)
	}
}

func TestCursorEmptySeries(t *testing.T) {
	c := NewCursor(model.QuoteSeries{})
	if _, ok := c.Price(model.TimeKey(20231117, 34200000)); ok {
		t.Error("empty series reported a match")
	}
}
