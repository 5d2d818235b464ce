// Package main is the entry point for the trk CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/trackfile/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
