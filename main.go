package main

import (
	"os"

	"github.com/rsharan/talentscout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
