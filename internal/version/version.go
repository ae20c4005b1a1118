// Package version holds build information for the command line tool.
package version

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// String returns the plain version line.
func String() string {
	return format(fmt.Sprint)
}

// Colored returns the version line with the version number highlighted.
func Colored() string {
	return format(color.New(color.FgGreen, color.Bold).Sprint)
}

func format(highlight func(a ...any) string) string {
	s := "range-remapper " + highlight(Version)

	if GitCommit != "" {
		s += " (" + GitCommit + ")"
	}

	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s + " " + runtime.Version()
}
