package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"fqtrim/internal/fastq"
	"fqtrim/internal/trim"
)

// Stats are the per-run counters.
type Stats struct {
	Total   int // reads found
	Removed int // reads discarded as too short after trimming
	Trimmed int // reads kept with at least one base removed
	Kept    int // reads written

	BasesIn  int64
	BasesOut int64
}

func (s *Stats) add(in fastq.Record, res trim.Result) {
	s.Total++
	s.BasesIn += int64(in.Len())
	if !res.Kept {
		s.Removed++
		return
	}
	s.Kept++
	s.BasesOut += int64(res.Record.Len())
	if res.Changed() {
		s.Trimmed++
	}
}

// Run streams every record of r through trim.Front and writes kept records
// to w, which it flushes before returning successfully. It stops at the
// first read, trim or write error, or when ctx is done; the counters
// gathered so far are returned alongside the error.
func Run(ctx context.Context, r *fastq.Reader, w *fastq.Writer, th trim.Thresholds, logger *slog.Logger) (Stats, error) {
	var st Stats
	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, fmt.Errorf("read record %d: %w", st.Total+1, err)
		}

		res, err := trim.Front(rec, th)
		if err != nil {
			return st, fmt.Errorf("trim record %d (line %d): %w", st.Total+1, r.Line()-3, err)
		}
		st.add(rec, res)
		if !res.Kept {
			logger.Debug("read removed", "id", rec.ID, "length", rec.Len(), "trimmed", res.Trimmed)
			continue
		}
		if err := w.Write(res.Record); err != nil {
			return st, fmt.Errorf("write record %s: %w", rec.ID, err)
		}
	}
	if err := w.Flush(); err != nil {
		return st, fmt.Errorf("flush output: %w", err)
	}
	return st, nil
}
