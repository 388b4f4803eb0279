// Package main is the entry point for the riskcheck CLI.
package main

import (
	"os"

	"github.com/f3rmion/riskcheck/cmd/riskcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
