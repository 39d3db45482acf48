package main

import (
	"os"

	"github.com/ThalesGroup/requin-2023-experiment/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
