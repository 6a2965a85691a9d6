// This file contains build information set through -ldflags, e.g.
//   go build -ldflags "-X github.com/nobletooth/chain/pkg/utils.Version=v1.2.0" ./cmd/chain
// CAUTION: This file shouldn't be removed or else the build flags wouldn't be set properly.

package utils

import (
	"log/slog"
	"strconv"
)

var (
	TestMode   string // Should be true when building test binaries that panic on invariants.
	IsTestMode bool
	Version    string
	Commit     string
	BuildTime  string
)

// devVersion is reported when the binary was built without version information.
const devVersion = "v0.0.0-dev"

func init() {
	// If build info is not set, make that clear.
	if Version == "" {
		Version = devVersion
	}
	if Commit == "" {
		Commit = "unknown"
	}
	if BuildTime == "" {
		BuildTime = "unknown"
	}
	if len(TestMode) > 0 {
		if isTestMode, err := strconv.ParseBool(TestMode); err == nil {
			IsTestMode = isTestMode
		} else {
			slog.Warn("Failed to parse TestMode build flag, defaulting to false", "error", err)
		}
	}
}
