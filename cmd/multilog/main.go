// Package main is the entry point for the multilog CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/multilog/cmd/multilog/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "multilog:", err)
		os.Exit(1)
	}
}
