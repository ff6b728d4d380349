package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/netscapy/netscapy/internal/engine"
	"github.com/netscapy/netscapy/internal/output"
	"github.com/netscapy/netscapy/pkg/types"
)

var (
	toolsFlag       string
	profileFlag     string
	nmapArgsFlag    string
	niktoArgsFlag   string
	whatwebArgsFlag string
)

var scanCmd = &cobra.Command{
	Use:   "scan [target]",
	Short: "Run security scanners against a target",
	Long: `Runs the selected tools (nmap, nikto, whatweb) against the target
concurrently. Each tool's output is written to the output directory, and a
combined JSON report summarizes the whole run.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&toolsFlag, "tools", "t", "", "comma-separated tools to run (default from config)")
	scanCmd.Flags().StringVarP(&profileFlag, "profile", "p", "", "named scan profile from the config file")
	scanCmd.Flags().StringVar(&nmapArgsFlag, "nmap-args", "", "arguments passed to nmap, replacing its defaults")
	scanCmd.Flags().StringVar(&niktoArgsFlag, "nikto-args", "", "arguments passed to nikto, replacing its defaults")
	scanCmd.Flags().StringVar(&whatwebArgsFlag, "whatweb-args", "", "arguments passed to whatweb, replacing its defaults")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	tools, err := selectTools(cmd)
	if err != nil {
		return err
	}

	formatter, err := output.GetFormatter(formatFlag)
	if err != nil {
		return err
	}

	toolArgs := map[string]string{}
	for tool, extra := range appConfig.ToolArgs {
		toolArgs[tool] = extra
	}
	if nmapArgsFlag != "" {
		toolArgs["nmap"] = nmapArgsFlag
	}
	if niktoArgsFlag != "" {
		toolArgs["nikto"] = niktoArgsFlag
	}
	if whatwebArgsFlag != "" {
		toolArgs["whatweb"] = whatwebArgsFlag
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupt received, stopping scan...")
		cancel()
	}()

	eng := engine.New(defaultRegistry())
	rep, err := eng.Scan(ctx, engine.Request{
		Target:    args[0],
		Tools:     tools,
		ToolArgs:  toolArgs,
		OutputDir: outputDirFlag,
		Workers:   workersFlag,
		Timeout:   timeoutFlag,
		OnProgress: func(done, total int, res *types.JobResult) {
			line := fmt.Sprintf("[%d/%d] %s %s", done, total, res.Tool, progressStatus(res.Status))
			if res.Error != "" {
				line += ": " + res.Error
			}
			fmt.Fprintln(os.Stderr, line)
		},
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(os.Stdout, rep); err != nil {
		return err
	}
	if rep.ReportFile != "" {
		fmt.Fprintf(os.Stderr, "\nCombined report: %s\n", rep.ReportFile)
	}
	return nil
}

func progressStatus(s types.Status) string {
	switch s {
	case types.StatusCompleted:
		return color.GreenString("done")
	case types.StatusTimeout:
		return color.YellowString("timed out")
	default:
		return color.RedString("failed")
	}
}

// selectTools resolves which tools to run, in priority order: --tools flag,
// --profile, then the configured defaults.
func selectTools(cmd *cobra.Command) ([]string, error) {
	if cmd.Flags().Changed("tools") {
		return strings.Split(toolsFlag, ","), nil
	}
	if profileFlag != "" {
		p := appConfig.GetProfile(profileFlag)
		if p == nil {
			return nil, fmt.Errorf("scan profile %q not found in config", profileFlag)
		}
		return p.Tools, nil
	}
	return appConfig.DefaultTools, nil
}
