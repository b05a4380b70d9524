package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tabstrip/hover-cli/internal/model"
	"github.com/tabstrip/hover-cli/internal/output"
	"github.com/tabstrip/hover-cli/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current window snapshot",
	Long:  "List all visible top-level windows with app name, title, PID, bounds, and focus flag. Useful for checking what the window resolver sees.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("focused", false, "Only show the focused window")
	listCmd.Flags().String("app", "", "Filter windows by app name substring")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	focusedOnly, _ := cmd.Flags().GetBool("focused")
	appFilter, _ := cmd.Flags().GetString("app")

	windows, err := provider.Windows.ListWindows()
	if err != nil {
		return err
	}

	filtered := []model.Window{}
	for _, w := range windows {
		if focusedOnly && !w.Focused {
			continue
		}
		if appFilter != "" && !strings.Contains(strings.ToLower(w.App), strings.ToLower(appFilter)) {
			continue
		}
		filtered = append(filtered, w)
	}

	if format, _ := rootCmd.PersistentFlags().GetString("format"); format == "table" {
		printWindowTable(filtered)
		return nil
	}
	return output.Print(filtered)
}

func printWindowTable(windows []model.Window) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "App", "PID", "Title", "Bounds", "Focused")
	for _, w := range windows {
		focused := ""
		if w.Focused {
			focused = "*"
		}
		table.Append(
			strconv.Itoa(w.ID),
			w.App,
			strconv.Itoa(w.PID),
			w.Title,
			fmt.Sprintf("%d,%d %dx%d", w.Bounds[0], w.Bounds[1], w.Bounds[2], w.Bounds[3]),
			focused,
		)
	}
	table.Render()
}
