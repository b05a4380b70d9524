package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tabstrip/hover-cli/internal/logging"
	"github.com/tabstrip/hover-cli/internal/relay"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Run the native-messaging relay loop",
	Long: `Run the long-lived message relay consumed by the browser extension:
length-prefixed JSON frames on stdin/stdout. Each check_hover request spawns
a fresh "hover-cli detect" invocation and replies with hover_result {index}
or error {message}. The loop ends when stdin closes.`,
	RunE: runHost,
}

func init() {
	rootCmd.AddCommand(hostCmd)
	hostCmd.Flags().String("detector", "", "Path to the detector executable (default: this binary)")
}

func runHost(cmd *cobra.Command, args []string) error {
	detector, _ := cmd.Flags().GetString("detector")
	if detector == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locate detector executable: %w", err)
		}
		detector = exe
	}
	configPath, _ := rootCmd.PersistentFlags().GetString("config")

	logging.Info().Int("pid", os.Getpid()).Str("detector", detector).Msg("relay started")

	host := &relay.Host{
		In:    cmd.InOrStdin(),
		Out:   cmd.OutOrStdout(),
		Check: func() (uint64, error) { return runDetector(detector, configPath) },
		Log:   logging.Logger,
	}
	return host.Run()
}

// runDetector spawns one short-lived detection invocation and parses its
// primary output as the group ordinal.
func runDetector(detector, configPath string) (uint64, error) {
	cmdArgs := []string{"detect"}
	if configPath != "" {
		cmdArgs = append(cmdArgs, "--config", configPath)
	}

	out, err := exec.Command(detector, cmdArgs...).Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return 0, fmt.Errorf("detector failed: %s", strings.TrimSpace(string(ee.Stderr)))
		}
		return 0, fmt.Errorf("run detector: %w", err)
	}

	index, err := strconv.ParseUint(strings.TrimSpace(string(out)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse detector output %q: %w", strings.TrimSpace(string(out)), err)
	}
	return index, nil
}
