// Package trim removes low-quality bases from the start of FASTQ reads.
package trim

import (
	"fqtrim/internal/fastq"
)

// Thresholds controls front trimming. Both bounds are inclusive: a base
// whose score reaches MinQuality stops trimming, and a read whose trimmed
// length reaches MinSize is kept.
type Thresholds struct {
	MinQuality int
	MinSize    int
}

// Result is the outcome of trimming one read.
type Result struct {
	Record  fastq.Record // trimmed read; zero value when discarded
	Kept    bool
	Trimmed int // leading bases removed
}

// Changed reports whether a kept read lost any bases.
func (r Result) Changed() bool { return r.Kept && r.Trimmed > 0 }

// FrontIndex returns the position of the first base whose Phred+33 score is
// at least minQuality, or len(qual) when there is none.
func FrontIndex(qual string, minQuality int) int {
	i := 0
	for i < len(qual) && fastq.Phred(qual[i]) < minQuality {
		i++
	}
	return i
}

// Front trims the low-quality prefix of rec and decides whether the rest is
// long enough to keep. Records whose sequence and quality lengths differ are
// rejected with fastq.ErrLengthMismatch, and quality strings that are not
// Phred+33 ASCII with fastq.ErrQualityEncoding.
func Front(rec fastq.Record, th Thresholds) (Result, error) {
	if err := rec.Validate(); err != nil {
		return Result{}, err
	}
	cut := FrontIndex(rec.Qual, th.MinQuality)
	if len(rec.Seq)-cut < th.MinSize {
		return Result{Trimmed: cut}, nil
	}
	return Result{
		Record: fastq.Record{
			ID:   rec.ID,
			Seq:  rec.Seq[cut:],
			Sep:  rec.Sep,
			Qual: rec.Qual[cut:],
		},
		Kept:    true,
		Trimmed: cut,
	}, nil
}
