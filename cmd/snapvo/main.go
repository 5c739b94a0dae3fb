package main

import (
	"os"

	"github.com/snapvo/snapvo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
