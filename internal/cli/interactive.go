package cli

import (
	"github.com/spf13/cobra"

	"github.com/netscapy/netscapy/internal/engine"
	"github.com/netscapy/netscapy/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive TUI mode",
	Long:  "Start an interactive terminal UI for picking tools, entering a target, and watching the scan run.",
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	eng := engine.New(defaultRegistry())
	return tui.Run(eng, tui.Options{
		OutputDir: outputDirFlag,
		Workers:   workersFlag,
		Timeout:   timeoutFlag,
	})
}
