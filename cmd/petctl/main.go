package main

import (
	"fmt"
	"os"

	"pets-api/internal/config"
)

func main() {
	config.LoadDotEnvUp(8)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
