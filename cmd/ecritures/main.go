package main

import (
	"os"

	"github.com/ecritures-dev/ecritures/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
