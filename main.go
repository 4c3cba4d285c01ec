package main

import (
	"os"

	"github.com/abhisek/mathai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
