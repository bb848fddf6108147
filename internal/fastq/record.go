// Package fastq reads and writes 4-line FASTQ records.
//
// Only the plain single-line layout is handled: header, sequence,
// separator and quality, each on its own line. Field contents are not
// validated by the Reader; see Record.Validate.
package fastq

import (
	"errors"
	"fmt"
)

// PhredOffset is the code point subtracted from a quality character to get
// its Phred score (Sanger / Illumina 1.8+ encoding).
const PhredOffset = 33

// ErrLengthMismatch is reported by Validate when sequence and quality differ
// in length.
var ErrLengthMismatch = errors.New("fastq: sequence and quality lengths differ")

// ErrQualityEncoding is reported by Validate when a quality character is not
// printable ASCII, so it cannot be a Phred+33 score.
var ErrQualityEncoding = errors.New("fastq: quality is not Phred+33 ASCII")

const (
	minQual = '!'
	maxQual = '~'
)

// Record is one FASTQ read. Values are treated as immutable; operations that
// change a read return a new Record.
type Record struct {
	ID   string // line 1, conventionally starts with '@'
	Seq  string // line 2
	Sep  string // line 3, conventionally starts with '+'
	Qual string // line 4, Phred+33
}

// Len is the sequence length.
func (r Record) Len() int { return len(r.Seq) }

// Phred decodes one quality character. Quality strings are handled byte by
// byte; Validate rejects anything outside printable ASCII.
func Phred(b byte) int { return int(b) - PhredOffset }

// Validate checks the sequence/quality length invariant and that every
// quality character is printable ASCII ('!' through '~').
func (r Record) Validate() error {
	if len(r.Seq) != len(r.Qual) {
		return fmt.Errorf("%w: %s has %d bases and %d quality values", ErrLengthMismatch, r.ID, len(r.Seq), len(r.Qual))
	}
	for i := 0; i < len(r.Qual); i++ {
		if c := r.Qual[i]; c < minQual || c > maxQual {
			return fmt.Errorf("%w: %s has byte 0x%02x at quality position %d", ErrQualityEncoding, r.ID, c, i+1)
		}
	}
	return nil
}
