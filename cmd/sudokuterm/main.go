package main

import (
	"os"

	"svw.info/sudokuterm/internal/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
