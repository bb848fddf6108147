// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func within(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func TestImportBoundaries(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not on PATH")
	}
	cmd := exec.Command("go", "list", "-json", "fqtrim/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// The record format and the trimmer know nothing about how they are
	// driven; the driver knows nothing about the command line.
	bans := map[string][]string{
		"fqtrim/internal/fastq": {
			"fqtrim/internal/trim", "fqtrim/internal/pipeline", "fqtrim/internal/report",
			"fqtrim/internal/cli", "fqtrim/internal/cliutil", "fqtrim/internal/app",
			"fqtrim/internal/config", "fqtrim/internal/log", "fqtrim/cmd",
		},
		"fqtrim/internal/trim": {
			"fqtrim/internal/pipeline", "fqtrim/internal/report",
			"fqtrim/internal/cli", "fqtrim/internal/cliutil", "fqtrim/internal/app",
			"fqtrim/internal/config", "fqtrim/internal/log", "fqtrim/cmd",
		},
		"fqtrim/internal/pipeline": {
			"fqtrim/internal/report", "fqtrim/internal/cli", "fqtrim/internal/cliutil",
			"fqtrim/internal/app", "fqtrim/internal/appshell", "fqtrim/internal/config", "fqtrim/cmd",
		},
		"fqtrim/internal/report": {
			"fqtrim/internal/fastq", "fqtrim/internal/trim", "fqtrim/internal/pipeline",
			"fqtrim/internal/cli", "fqtrim/internal/app", "fqtrim/cmd",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		for prefix, forbidden := range bans {
			if !within(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if within(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
