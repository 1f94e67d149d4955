package main

import (
	"os"

	"github.com/DukeRupert/bootkit/internal/cli"
)

func run() error {
	return cli.NewRootCmd().Execute()
}

func main() {
	// cobra already printed the error
	if err := run(); err != nil {
		os.Exit(1)
	}
}
