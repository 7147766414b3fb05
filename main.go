package main

import (
	"os"

	"github.com/tobvie/gearlist/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
