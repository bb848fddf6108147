package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fqtrim/internal/fastq"
	"fqtrim/internal/trim"
)

// Streams are the process streams used for the "-" paths. Nil fields fall
// back to os.Stdin and os.Stdout.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
}

// RunFiles opens in and out ("-" for std.Stdin/std.Stdout) and calls Run.
// Both streams are closed on every path. When the run fails, an output file
// that RunFiles created is removed so no partial FASTQ is left behind.
func RunFiles(ctx context.Context, in, out string, std Streams, th trim.Thresholds, logger *slog.Logger) (st Stats, err error) {
	logger.Info("opening input", "path", in)
	rc, err := fastq.Open(in, std.Stdin)
	if err != nil {
		return st, fmt.Errorf("open input: %w", err)
	}
	defer rc.Close()

	logger.Info("opening output", "path", out)
	wc, err := fastq.Create(out, std.Stdout)
	if err != nil {
		return st, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		cerr := wc.Close()
		if err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
		if err != nil && out != fastq.Stdio {
			if rerr := os.Remove(out); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
				logger.Warn("could not remove partial output", "path", out, "err", rerr)
			}
		}
	}()

	st, err = Run(ctx, fastq.NewReader(rc), fastq.NewWriter(wc), th, logger)
	if err != nil {
		return st, err
	}
	logger.Info("trimming finished",
		"reads", st.Total, "removed", st.Removed, "trimmed", st.Trimmed,
		"bases_in", st.BasesIn, "bases_out", st.BasesOut)
	return st, nil
}
