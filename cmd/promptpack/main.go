package main

import (
	"os"

	"github.com/promptpack/promptpack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
