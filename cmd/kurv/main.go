package main

import (
	"os"

	"kurv/cmd/kurv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
