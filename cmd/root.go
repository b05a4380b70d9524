package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabstrip/hover-cli/internal/config"
	"github.com/tabstrip/hover-cli/internal/logging"
	"github.com/tabstrip/hover-cli/internal/output"
	"github.com/tabstrip/hover-cli/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "hover-cli",
	Short: "Detect which browser tab group the mouse cursor is over",
	Long:  "A CLI tool that inspects the pixels of a browser window's tab strip and reports the 1-based index of the color-coded tab group under the mouse cursor.",
}

func Execute() {
	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json, table (list only)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML palette/geometry config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "Append diagnostics to hover-cli.log (also: "+logging.VerboseEnv+" env var)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		if err := logging.Init(verbose); err != nil {
			return fmt.Errorf("open log file: %w", err)
		}

		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		case "table":
			// Rendered per command; only list supports it.
		default:
			return fmt.Errorf("unsupported format: %s (use yaml, json, or table)", format)
		}
		return nil
	}
}

// loadConfig reads the palette/geometry config from --config, falling back
// to the built-in catalog.
func loadConfig() (config.Config, error) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
