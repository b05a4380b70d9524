package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabstrip/hover-cli/internal/detect"
	"github.com/tabstrip/hover-cli/internal/logging"
	"github.com/tabstrip/hover-cli/internal/platform"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the tab group under the cursor once",
	Long: `Run one detection pass: resolve the browser window, capture its tab
strip, and print the 1-based index of the tab-group band under the mouse
cursor as a bare decimal on stdout. 0 means no group applies (not a browser
window, cursor outside the strip, or no band under the cursor).

The bare-decimal stdout is the contract consumed by "hover-cli host".`,
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().String("debug-dir", "", "Write annotated strip images into this directory")
}

func runDetect(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	detector := detect.New(provider, cfg, logging.Logger)
	if dir, _ := cmd.Flags().GetString("debug-dir"); dir != "" {
		detector.EnableDebugImages(dir)
	}

	index, err := detector.HoveredGroupIndex()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), index)
	return nil
}
