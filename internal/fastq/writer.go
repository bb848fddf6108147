package fastq

import (
	"bufio"
	"io"
)

// Writer emits records in 4-line layout, each line ending in '\n'.
// Flush must be called once writing is done.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter returns a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, readBufferSize)}
}

// Write buffers one record.
func (w *Writer) Write(rec Record) error {
	for _, s := range [4]string{rec.ID, rec.Seq, rec.Sep, rec.Qual} {
		if _, err := w.bw.WriteString(s); err != nil {
			return err
		}
		if err := w.bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.bw.Flush() }
