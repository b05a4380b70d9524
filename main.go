package main

import (
	"github.com/tabstrip/hover-cli/cmd"

	// Register the Windows platform backend.
	_ "github.com/tabstrip/hover-cli/internal/platform/win"
)

func main() {
	cmd.Execute()
}
