package main

import (
	"os"

	"github.com/msto63/wire/cmd/wire/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
