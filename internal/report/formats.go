package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"fqtrim/pkg/api"
)

func init() {
	Register("text", writeText)
	Register("json", writeJSON)
	Register("yaml", writeYAML)
}

func writeText(w io.Writer, s api.SummaryV1) error {
	_, err := fmt.Fprintf(w, "%d reads were found\n%d reads were removed\n%d reads were trimmed\n",
		s.Reads, s.Removed, s.Trimmed)
	return err
}

func writeJSON(w io.Writer, s api.SummaryV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func writeYAML(w io.Writer, s api.SummaryV1) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
