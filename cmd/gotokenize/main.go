package main

import (
	"os"

	"GoTokenize/internal/cli"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	cli.Version = Version
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
