// Command reseq renames the video files in a folder to a numbered sequence
// (walking0.avi, walking1.avi, ...).
//
// It resolves configuration from reseq.yaml, the environment, and flags, then
// either renames (default), renames a fixed numbered range ("range"), or
// reports what a run would do ("check").
package main

import (
	"os"

	"github.com/backmassage/reseq/internal/cli"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	if err := cli.Execute(version, commit); err != nil {
		os.Exit(1)
	}
}
