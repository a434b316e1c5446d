package main

import (
	"os"

	"github.com/abhisek/vetcards/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
