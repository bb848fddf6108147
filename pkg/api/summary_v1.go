// pkg/api/summary_v1.go
package api

// SummaryV1 is the stable JSON/YAML schema for a trimming run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SummaryV1 struct {
	Input      string `json:"input" yaml:"input"`
	Output     string `json:"output" yaml:"output"`
	MinQuality int    `json:"min_quality" yaml:"min_quality"`
	MinSize    int    `json:"min_size" yaml:"min_size"`

	Reads   int `json:"reads" yaml:"reads"`
	Removed int `json:"removed" yaml:"removed"`
	Trimmed int `json:"trimmed" yaml:"trimmed"`
	Kept    int `json:"kept" yaml:"kept"`

	BasesIn  int64 `json:"bases_in" yaml:"bases_in"`
	BasesOut int64 `json:"bases_out" yaml:"bases_out"`
}
