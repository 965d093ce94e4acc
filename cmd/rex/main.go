package main

import (
	"os"

	"github.com/coregx/rex/cmd/rex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
