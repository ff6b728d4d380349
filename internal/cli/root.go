package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/netscapy/netscapy/internal/config"
	"github.com/netscapy/netscapy/internal/logging"
	"github.com/netscapy/netscapy/internal/scanner"
	"github.com/netscapy/netscapy/internal/scanner/nikto"
	"github.com/netscapy/netscapy/internal/scanner/nmap"
	"github.com/netscapy/netscapy/internal/scanner/whatweb"
)

var version = "dev"

var (
	configFlag    string
	formatFlag    string
	outputDirFlag string
	workersFlag   int
	timeoutFlag   time.Duration
	logLevelFlag  string
	logFileFlag   string
)

// appConfig holds the loaded configuration, available after PersistentPreRunE.
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "netscapy",
	Short: "Netscapy orchestrates network security scanners",
	Long: `Netscapy runs external security scanners (nmap, nikto, whatweb)
against a target, collects their output into per-tool artifacts, and
combines everything into a single JSON report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var cfg *config.Config
		var err error
		if configFlag != "" {
			cfg, err = config.LoadFromFile(configFlag)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		config.ApplyFlags(cfg, cmd)

		// Sync config values back to flag variables so all commands pick up
		// config-file and env-var defaults transparently.
		formatFlag = cfg.OutputFormat
		outputDirFlag = cfg.OutputDir
		workersFlag = cfg.Workers
		timeoutFlag = cfg.Timeout
		logLevelFlag = cfg.LogLevel
		logFileFlag = cfg.LogFile

		if err := logging.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
			return fmt.Errorf("setting up logging: %w", err)
		}

		appConfig = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// defaultRegistry returns a registry with every bundled tool adapter.
func defaultRegistry() *scanner.Registry {
	reg := scanner.NewRegistry()
	reg.Register(nmap.New())
	reg.Register(nikto.New())
	reg.Register(whatweb.New())
	return reg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.netscapy.yaml)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "table", "output format: table, json, markdown, html")
	rootCmd.PersistentFlags().StringVarP(&outputDirFlag, "output", "o", "output/reports", "directory for scan artifacts")
	rootCmd.PersistentFlags().IntVarP(&workersFlag, "workers", "w", 3, "max tools running concurrently")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 10*time.Minute, "per-tool timeout")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "also write logs to this file")

	rootCmd.AddCommand(versionCmd)
}
