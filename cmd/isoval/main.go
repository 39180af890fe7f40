package main

import (
	"os"

	"github.com/open-payments/isoval/cmd/isoval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
