package encode

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/ashler-herrick/betedge/internal/model"
)

// TickBuilder accumulates output rows column-wise against TickSchema.
// Not safe for concurrent use; the engine appends from one goroutine.
type TickBuilder struct {
	rb *array.RecordBuilder

	msOfDay      *array.Uint32Builder
	bidSize      *array.Uint16Builder
	bidExchange  *array.Uint8Builder
	bidPrice     *array.Float32Builder
	bidCondition *array.Uint8Builder
	askSize      *array.Uint16Builder
	askExchange  *array.Uint8Builder
	askPrice     *array.Float32Builder
	askCondition *array.Uint8Builder
	date         *array.Uint32Builder
	root         *array.StringBuilder
	expiration   *array.Uint32Builder
	strike       *array.Uint32Builder
	right        *array.StringBuilder
}

// NewTickBuilder returns an empty builder. Callers must Release it.
func NewTickBuilder(mem memory.Allocator) *TickBuilder {
	rb := array.NewRecordBuilder(mem, TickSchema)
	return &TickBuilder{
		rb:           rb,
		msOfDay:      rb.Field(0).(*array.Uint32Builder),
		bidSize:      rb.Field(1).(*array.Uint16Builder),
		bidExchange:  rb.Field(2).(*array.Uint8Builder),
		bidPrice:     rb.Field(3).(*array.Float32Builder),
		bidCondition: rb.Field(4).(*array.Uint8Builder),
		askSize:      rb.Field(5).(*array.Uint16Builder),
		askExchange:  rb.Field(6).(*array.Uint8Builder),
		askPrice:     rb.Field(7).(*array.Float32Builder),
		askCondition: rb.Field(8).(*array.Uint8Builder),
		date:         rb.Field(9).(*array.Uint32Builder),
		root:         rb.Field(10).(*array.StringBuilder),
		expiration:   rb.Field(11).(*array.Uint32Builder),
		strike:       rb.Field(12).(*array.Uint32Builder),
		right:        rb.Field(13).(*array.StringBuilder),
	}
}

// Reserve pre-sizes the column buffers for n additional rows.
func (b *TickBuilder) Reserve(n int) {
	b.rb.Reserve(n)
}

// Append adds one surviving tick flattened with its contract identity.
func (b *TickBuilder) Append(key model.ContractKey, t model.Tick) {
	b.msOfDay.Append(t.MsOfDay)
	b.bidSize.Append(t.BidSize)
	b.bidExchange.Append(t.BidExchange)
	b.bidPrice.Append(t.BidPrice)
	b.bidCondition.Append(t.BidCondition)
	b.askSize.Append(t.AskSize)
	b.askExchange.Append(t.AskExchange)
	b.askPrice.Append(t.AskPrice)
	b.askCondition.Append(t.AskCondition)
	b.date.Append(uint32(t.Date))
	b.root.Append(key.Root)
	b.expiration.Append(uint32(key.Expiration))
	b.strike.Append(key.Strike)
	b.right.Append(string(key.Right))
}

// Len returns the number of appended rows.
func (b *TickBuilder) Len() int {
	return b.msOfDay.Len()
}

// NewRecord seals the accumulated rows into a record and resets the
// builder. The caller owns the record and must Release it.
func (b *TickBuilder) NewRecord() arrow.Record {
	return b.rb.NewRecord()
}

// Release frees the builder's buffers.
func (b *TickBuilder) Release() {
	b.rb.Release()
}

// QuoteBuilder accumulates underlying quote rows against QuoteSchema.
type QuoteBuilder struct {
	rb *array.RecordBuilder

	msOfDay      *array.Uint32Builder
	bidSize      *array.Uint16Builder
	bidExchange  *array.Uint8Builder
	bidPrice     *array.Float32Builder
	bidCondition *array.Uint8Builder
	askSize      *array.Uint16Builder
	askExchange  *array.Uint8Builder
	askPrice     *array.Float32Builder
	askCondition *array.Uint8Builder
	date         *array.Uint32Builder
}

// NewQuoteBuilder returns an empty builder. Callers must Release it.
func NewQuoteBuilder(mem memory.Allocator) *QuoteBuilder {
	rb := array.NewRecordBuilder(mem, QuoteSchema)
	return &QuoteBuilder{
		rb:           rb,
		msOfDay:      rb.Field(0).(*array.Uint32Builder),
		bidSize:      rb.Field(1).(*array.Uint16Builder),
		bidExchange:  rb.Field(2).(*array.Uint8Builder),
		bidPrice:     rb.Field(3).(*array.Float32Builder),
		bidCondition: rb.Field(4).(*array.Uint8Builder),
		askSize:      rb.Field(5).(*array.Uint16Builder),
		askExchange:  rb.Field(6).(*array.Uint8Builder),
		askPrice:     rb.Field(7).(*array.Float32Builder),
		askCondition: rb.Field(8).(*array.Uint8Builder),
		date:         rb.Field(9).(*array.Uint32Builder),
	}
}

// Reserve pre-sizes the column buffers for n additional rows.
func (b *QuoteBuilder) Reserve(n int) {
	b.rb.Reserve(n)
}

// Append adds one underlying tick.
func (b *QuoteBuilder) Append(t model.Tick) {
	b.msOfDay.Append(t.MsOfDay)
	b.bidSize.Append(t.BidSize)
	b.bidExchange.Append(t.BidExchange)
	b.bidPrice.Append(t.BidPrice)
	b.bidCondition.Append(t.BidCondition)
	b.askSize.Append(t.AskSize)
	b.askExchange.Append(t.AskExchange)
	b.askPrice.Append(t.AskPrice)
	b.askCondition.Append(t.AskCondition)
	b.date.Append(uint32(t.Date))
}

// Len returns the number of appended rows.
func (b *QuoteBuilder) Len() int {
	return b.msOfDay.Len()
}

// NewRecord seals the accumulated rows into a record and resets the
// builder. The caller owns the record and must Release it.
func (b *QuoteBuilder) NewRecord() arrow.Record {
	return b.rb.NewRecord()
}

// Release frees the builder's buffers.
func (b *QuoteBuilder) Release() {
	b.rb.Release()
}
