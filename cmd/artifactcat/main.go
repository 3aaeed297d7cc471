// artifactcat inspects a columnar artifact produced by betedge. It
// sniffs the format (Parquet magic vs Arrow IPC stream), prints the
// schema and row count, and dumps the leading rows.
//
// Usage: go run ./cmd/artifactcat -in chain.parquet -head 5
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"
)

var parquetMagic = []byte("PAR1")

func main() {
	inPath := flag.String("in", "", "artifact to inspect")
	head := flag.Int("head", 5, "rows to print")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "artifactcat: -in is required")
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "artifactcat: %v\n", err)
		os.Exit(1)
	}

	if bytes.HasPrefix(data, parquetMagic) {
		err = catParquet(data, *head)
	} else {
		err = catIPC(data, *head)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "artifactcat: %v\n", err)
		os.Exit(1)
	}
}

func catIPC(data []byte, head int) error {
	rd, err := ipc.NewReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("open ipc stream: %w", err)
	}
	defer rd.Release()

	fmt.Println("format: arrow ipc stream")
	fmt.Println(rd.Schema())

	var rows int64
	var first arrow.Record
	for rd.Next() {
		rec := rd.Record()
		if first == nil && rec.NumRows() > 0 {
			first = rec.NewSlice(0, min(int64(head), rec.NumRows()))
		}
		rows += rec.NumRows()
	}
	if err := rd.Err(); err != nil {
		return fmt.Errorf("read ipc stream: %w", err)
	}

	fmt.Printf("rows: %d\n", rows)
	if first != nil {
		defer first.Release()
		fmt.Println(first)
	}
	return nil
}

func catParquet(data []byte, head int) error {
	mem := memory.NewGoAllocator()
	tbl, err := pqarrow.ReadTable(context.Background(), bytes.NewReader(data),
		parquet.NewReaderProperties(mem), pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return fmt.Errorf("open parquet file: %w", err)
	}
	defer tbl.Release()

	fmt.Println("format: parquet")
	fmt.Println(tbl.Schema())
	fmt.Printf("rows: %d\n", tbl.NumRows())

	if tbl.NumRows() == 0 || head <= 0 {
		return nil
	}

	tr := array.NewTableReader(tbl, int64(head))
	defer tr.Release()
	if tr.Next() {
		fmt.Println(tr.Record())
	}
	return nil
}
