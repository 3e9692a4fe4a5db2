package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/hedgehog-cloud/hublfix/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/hedgehog-cloud/hublfix/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/hedgehog-cloud/hublfix/internal/version.Date={{.Date}}
)

// String returns the multi-line version report printed by "hublfix version".
func String() string {
	return fmt.Sprintf("hublfix version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
