// internal/cliutil/cliutil.go
package cliutil

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// valueFlag reports whether arg names a known flag that takes a separate
// value. Unknown flags are left for the parser to reject.
func valueFlag(fs *pflag.FlagSet, arg string) bool {
	var f *pflag.Flag
	if strings.HasPrefix(arg, "--") {
		f = fs.Lookup(strings.TrimPrefix(arg, "--"))
	} else if len(arg) == 2 {
		f = fs.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

func isNumber(arg string) bool {
	_, err := strconv.Atoi(arg)
	return err == nil
}

// SplitFlagsAndPositionals separates flag-like args from positionals,
// preserving '-', '--' and '--x=y' semantics. Negative integers such as
// "-5" are positionals, not shorthand flags.
func SplitFlagsAndPositionals(fs *pflag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			posArgs = append(posArgs, argv[i+1:]...)
			return
		case arg == "-", !strings.HasPrefix(arg, "-"), isNumber(arg):
			posArgs = append(posArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if !strings.Contains(arg, "=") && valueFlag(fs, arg) && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return
}

// NormalizeArgs reorders argv as flags, "--", positionals so that the flag
// parser never sees a positional. The "--" is only added when needed. The
// result is never nil: cobra reads os.Args when handed a nil slice.
func NormalizeArgs(fs *pflag.FlagSet, argv []string) []string {
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, argv)
	out := make([]string, 0, len(argv)+1)
	out = append(out, flagArgs...)
	if len(posArgs) > 0 {
		out = append(out, "--")
		out = append(out, posArgs...)
	}
	return out
}
