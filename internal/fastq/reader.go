package fastq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

const readBufferSize = 64 * 1024

var (
	// ErrTruncated is returned when the input ends part way through a record.
	ErrTruncated = errors.New("fastq: truncated record")
	// ErrBlankLine is returned when an empty line separates two records.
	ErrBlankLine = errors.New("fastq: blank line between records")
)

// ParseError records where in the input a malformed record was found.
type ParseError struct {
	Line int // 1-based
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("fastq: parse error on line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Reader pulls one record at a time from an underlying stream. It holds no
// state besides the stream position, so memory use does not depend on the
// input size.
type Reader struct {
	br   *bufio.Reader
	line int
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("fastq: reader source cannot be nil")
	}
	return &Reader{br: bufio.NewReaderSize(r, readBufferSize)}
}

// Line reports how many input lines have been consumed.
func (r *Reader) Line() int { return r.line }

// Read returns the next record. At a clean end of input it returns io.EOF.
// A record cut short by the end of input is a *ParseError wrapping
// ErrTruncated. Trailing blank lines count as end of input.
func (r *Reader) Read() (Record, error) {
	start := r.line + 1
	id, err := r.readLine()
	if err != nil {
		return Record{}, err
	}
	if id == "" {
		return Record{}, r.drainBlank(start)
	}

	var rest [3]string
	for i := range rest {
		s, err := r.readLine()
		if err == io.EOF {
			return Record{}, &ParseError{Line: start, Err: fmt.Errorf("%w: %s has %d of 4 lines", ErrTruncated, id, i+1)}
		}
		if err != nil {
			return Record{}, err
		}
		rest[i] = s
	}
	return Record{ID: id, Seq: rest[0], Sep: rest[1], Qual: rest[2]}, nil
}

// All yields records until the end of input. The first error is yielded and
// ends the sequence; io.EOF is not yielded. Like the Reader it is single use.
func (r *Reader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// drainBlank consumes the blank lines after an empty header line. Only blank
// lines may follow; anything else means the file had an interior gap.
func (r *Reader) drainBlank(blankAt int) error {
	for {
		s, err := r.readLine()
		if err != nil {
			return err
		}
		if s != "" {
			return &ParseError{Line: blankAt, Err: ErrBlankLine}
		}
	}
}

// readLine returns the next line without its terminator. A final line with
// no trailing newline is still returned; io.EOF only comes once nothing is
// left.
func (r *Reader) readLine() (string, error) {
	s, err := r.br.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", fmt.Errorf("fastq: read line %d: %w", r.line+1, err)
		}
		if s == "" {
			return "", io.EOF
		}
	}
	r.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}
