// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

// Options holds the positional arguments.
type Options struct {
	Input      string
	Output     string
	MinQuality int
	MinSize    int
}

// Usagef builds an error that wraps ErrUsage.
func Usagef(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, a...))
}

// ParseArgs parses the four positional arguments:
// input, output, minimum quality, minimum size.
func ParseArgs(args []string) (Options, error) {
	var opt Options
	if len(args) != 4 {
		return opt, Usagef("expected 4 arguments (input output min-quality min-size), got %d", len(args))
	}
	opt.Input, opt.Output = args[0], args[1]

	var err error
	if opt.MinQuality, err = parseInt("min-quality", args[2]); err != nil {
		return opt, err
	}
	if opt.MinSize, err = parseInt("min-size", args[3]); err != nil {
		return opt, err
	}

	// Validation
	switch {
	case opt.Input == "":
		return opt, Usagef("input path is empty")
	case opt.Output == "":
		return opt, Usagef("output path is empty")
	case opt.Input == opt.Output && opt.Input != "-":
		return opt, Usagef("input and output are the same file %q", opt.Input)
	}
	return opt, nil
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Usagef("%s must be an integer, got %q", name, s)
	}
	return n, nil
}
