package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/cleared-dev/saldo/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String describes the running binary for `saldo --version`.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
