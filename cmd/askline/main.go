// Package main is the entry point for the askline CLI.
package main

import (
	"os"

	"github.com/runger/askline/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
