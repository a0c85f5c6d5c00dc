package main

import (
	"os"

	"github.com/jask/miti/cmd/miti/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
