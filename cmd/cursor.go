package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tabstrip/hover-cli/internal/output"
	"github.com/tabstrip/hover-cli/internal/platform"
)

var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Print the current mouse cursor position",
	RunE:  runCursor,
}

func init() {
	rootCmd.AddCommand(cursorCmd)
}

// cursorResult is the output of the cursor command.
type cursorResult struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func runCursor(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	pos, err := provider.Cursor.CursorPosition()
	if err != nil {
		return err
	}
	return output.Print(cursorResult{X: pos.X, Y: pos.Y})
}
