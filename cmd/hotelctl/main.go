package main

import (
	"os"

	"github.com/hotelsuite/hotelsuite/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
