package app

import "fmt"

// Version, Commit, and BuildTime are injected via ldflags.
// Example: go build -ldflags "-X github.com/wanderto/wanderto-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build identity for startup logs and health probes.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
