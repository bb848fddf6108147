package fastq

import (
	"io"
	"os"
)

// Stdio is the path that selects stdin for Open and stdout for Create.
const Stdio = "-"

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Open opens path for reading. "-" reads from stdin (os.Stdin when nil),
// which Close leaves open.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == Stdio {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

// Create truncates or creates path for writing. "-" writes to stdout
// (os.Stdout when nil), which Close leaves open.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == Stdio {
		if stdout == nil {
			stdout = os.Stdout
		}
		return nopWriteCloser{stdout}, nil
	}
	return os.Create(path)
}
