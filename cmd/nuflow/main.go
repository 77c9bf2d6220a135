// Package main provides the nuflow CLI: tables of the reactor antineutrino
// IBD quantities computed by the nuflow graph nodes.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
