package main

import (
	"os"

	"minigrep/internal/minigrepcli"
)

func main() {
	if err := minigrepcli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
