// Package buildinfo exposes build-time metadata stamped via -ldflags.
package buildinfo

import (
	"fmt"
	"io"
)

// Populated at build time, e.g.:
//
//	go build -ldflags "-X .../buildinfo.Version=v1.2.0 -X .../buildinfo.Date=..."
var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// Print writes a one-line build summary to w.
func Print(w io.Writer) {
	fmt.Fprintf(w, "adminctl %s (built %s, commit %s)\n", Version, Date, Commit)
}
