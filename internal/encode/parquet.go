package encode

import (
	"bytes"
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/compress"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"
)

// ParquetBytes serializes one record as a zstd-compressed parquet file.
// The Arrow schema rides in the footer metadata so the unsigned column
// widths survive a round-trip.
func ParquetBytes(rec arrow.Record, mem memory.Allocator) ([]byte, error) {
	props := parquet.NewWriterProperties(
		parquet.WithCompression(compress.Codecs.Zstd),
		parquet.WithAllocator(mem),
	)
	arrProps := pqarrow.NewArrowWriterProperties(
		pqarrow.WithStoreSchema(),
		pqarrow.WithAllocator(mem),
	)

	var buf bytes.Buffer
	w, err := pqarrow.NewFileWriter(rec.Schema(), &buf, props, arrProps)
	if err != nil {
		return nil, fmt.Errorf("create parquet writer: %w", err)
	}
	if err := w.Write(rec); err != nil {
		w.Close()
		return nil, fmt.Errorf("write parquet row group: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish parquet file: %w", err)
	}
	return buf.Bytes(), nil
}
