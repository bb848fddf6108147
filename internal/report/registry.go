package report

import (
	"fmt"
	"io"
	"sort"

	"fqtrim/pkg/api"
)

// Func renders a summary to w.
type Func func(w io.Writer, s api.SummaryV1) error

var formats = map[string]Func{}

// Register adds or replaces a format (last wins).
func Register(name string, fn Func) { formats[name] = fn }

// Formats lists the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether a format is registered.
func Known(name string) bool {
	_, ok := formats[name]
	return ok
}

// Write renders s in the named format.
func Write(format string, w io.Writer, s api.SummaryV1) error {
	fn, ok := formats[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, s)
}
