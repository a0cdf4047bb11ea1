package ascii

import (
	"bufio"
	"io"
	"strconv"

	"github.com/polylat/polylat/coefficient"
)

// Writer emits whitespace-separated tokens and newlines to an underlying
// io.Writer, buffered for the line-at-a-time shape dump routines produce.
type Writer struct {
	w   *bufio.Writer
	col int
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Token writes s, space-separated from whatever precedes it on the line.
func (w *Writer) Token(s string) {
	if w.col > 0 {
		w.w.WriteByte(' ')
	}
	w.w.WriteString(s)
	w.col++
}

// Int writes n as a token.
func (w *Writer) Int(n int) { w.Token(strconv.Itoa(n)) }

// Coefficient writes c as a token.
func (w *Writer) Coefficient(c coefficient.Coefficient) { w.Token(c.String()) }

// EndLine terminates the current line.
func (w *Writer) EndLine() {
	w.w.WriteByte('\n')
	w.col = 0
}

// Flush flushes buffered output to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }
