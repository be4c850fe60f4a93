package distmatrix

import (
	"bufio"
	"fmt"
)

// renderer formats the block layout onto a bufio.Writer.
// bufio errors are sticky, so individual writes are not checked; the first
// failure surfaces from finish.
type renderer struct {
	w *bufio.Writer
}

func newRenderer(w *bufio.Writer) *renderer {
	return &renderer{w: w}
}

// header writes "data: <n>\n".
func (r *renderer) header(n int) {
	_, _ = fmt.Fprintf(r.w, "%s%d\n", HeaderPrefix, n)
}

// cell writes v right-aligned to FieldWidth followed by one space.
func (r *renderer) cell(v int) {
	_, _ = fmt.Fprintf(r.w, "%*d ", FieldWidth, v)
}

func (r *renderer) endRow() {
	_ = r.w.WriteByte('\n')
}

// finish writes the blank line that closes a block and flushes.
func (r *renderer) finish() error {
	_ = r.w.WriteByte('\n')
	return r.w.Flush()
}
