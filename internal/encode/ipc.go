package encode

import (
	"bytes"
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// IPCBytes serializes one record as an Arrow IPC stream: schema message,
// one record batch (written even when empty, so consumers always see the
// schema), EOS marker.
func IPCBytes(rec arrow.Record, mem memory.Allocator) ([]byte, error) {
	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err := w.Write(rec); err != nil {
		w.Close()
		return nil, fmt.Errorf("write ipc batch: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish ipc stream: %w", err)
	}
	return buf.Bytes(), nil
}
