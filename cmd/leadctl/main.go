package main

import (
	"os"

	"github.com/navarrastar/landing-backend/cmd/leadctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
