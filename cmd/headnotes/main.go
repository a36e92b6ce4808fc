// Command headnotes extracts structured records from LUBA headnote digests.
package main

import (
	"os"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
