package main

import (
	"os"

	"github.com/isfarbaset/git-wrapped/cmd"
	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/isfarbaset/git-wrapped/internal/iocache"
)

func main() {
	os.Exit(run())
}

// run exists so deferred cleanup fires before the process exits.
func run() int {
	defer iocache.CloseCaching()

	// Cobra is silenced on the root command, so setup and usage errors
	// surface here.
	if err := cmd.Execute(); err != nil {
		_, _ = contract.ErrorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
