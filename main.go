package main

import (
	"os"

	"github.com/abhisek/umlstudy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
