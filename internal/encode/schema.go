package encode

import "github.com/apache/arrow/go/v17/arrow"

// TickSchema is the 14-field flattened option-tick schema shared by both
// encodings: the quote tuple columns followed by the contract identity.
// Field order is fixed and every field is non-nullable.
var TickSchema = arrow.NewSchema([]arrow.Field{
	{Name: "ms_of_day", Type: arrow.PrimitiveTypes.Uint32},
	{Name: "bid_size", Type: arrow.PrimitiveTypes.Uint16},
	{Name: "bid_exchange", Type: arrow.PrimitiveTypes.Uint8},
	{Name: "bid_price", Type: arrow.PrimitiveTypes.Float32},
	{Name: "bid_condition", Type: arrow.PrimitiveTypes.Uint8},
	{Name: "ask_size", Type: arrow.PrimitiveTypes.Uint16},
	{Name: "ask_exchange", Type: arrow.PrimitiveTypes.Uint8},
	{Name: "ask_price", Type: arrow.PrimitiveTypes.Float32},
	{Name: "ask_condition", Type: arrow.PrimitiveTypes.Uint8},
	{Name: "date", Type: arrow.PrimitiveTypes.Uint32},
	{Name: "root", Type: arrow.BinaryTypes.String},
	{Name: "expiration", Type: arrow.PrimitiveTypes.Uint32},
	{Name: "strike", Type: arrow.PrimitiveTypes.Uint32},
	{Name: "right", Type: arrow.BinaryTypes.String},
}, nil)

// QuoteSchema is the 10-field underlying-quote schema: the quote tuple
// columns without contract identity.
var QuoteSchema = arrow.NewSchema([]arrow.Field{
	{Name: "ms_of_day", Type: arrow.PrimitiveTypes.Uint32},
	{Name: "bid_size", Type: arrow.PrimitiveTypes.Uint16},
	{Name: "bid_exchange", Type: arrow.PrimitiveTypes.Uint8},
	{Name: "bid_price", Type: arrow.PrimitiveTypes.Float32},
	{Name: "bid_condition", Type: arrow.PrimitiveTypes.Uint8},
	{Name: "ask_size", Type: arrow.PrimitiveTypes.Uint16},
	{Name: "ask_exchange", Type: arrow.PrimitiveTypes.Uint8},
	{Name: "ask_price", Type: arrow.PrimitiveTypes.Float32},
	{Name: "ask_condition", Type: arrow.PrimitiveTypes.Uint8},
	{Name: "date", Type: arrow.PrimitiveTypes.Uint32},
}, nil)
