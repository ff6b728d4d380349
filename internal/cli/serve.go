package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netscapy/netscapy/internal/engine"
	"github.com/netscapy/netscapy/internal/web"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Netscapy web server",
	Long:  "Launches the Netscapy web interface for starting scans and browsing their results from a browser.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", ":3000", "listen address (host:port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	eng := engine.New(defaultRegistry())
	s := web.NewServer(addrFlag, eng, web.Options{
		OutputDir: outputDirFlag,
		Workers:   workersFlag,
		Timeout:   timeoutFlag,
	})
	fmt.Fprintf(cmd.OutOrStdout(), "Netscapy web server listening on %s\n", addrFlag)
	return s.Start()
}
