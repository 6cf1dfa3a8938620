// ABOUTME: Entry point for the gcstress CLI
// ABOUTME: Delegates to the cmd package

package main

import (
	"os"

	"github.com/prateek/cyclegc/cmd/gcstress/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
