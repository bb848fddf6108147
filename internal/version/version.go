// Package version carries build metadata, set via -ldflags:
//
//	go build -ldflags "-X fqtrim/internal/version.Version=1.2.0" ./cmd/fqtrim
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
