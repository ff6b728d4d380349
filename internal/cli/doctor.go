package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/netscapy/netscapy/internal/scanner"
)

type doctorCheck struct {
	Name   string
	OK     bool
	Detail string
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the scanner binaries are available",
	Long:  "Verifies that every bundled tool's binary is on PATH and that the output directory is writable.",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	checks := runDoctorChecks()

	failed := 0
	for _, check := range checks {
		mark := color.GreenString("ok")
		if !check.OK {
			mark = color.RedString("missing")
			failed++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-20s %s\n", mark, check.Name, check.Detail)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nAll checks passed.")
	return nil
}

func runDoctorChecks() []doctorCheck {
	var checks []doctorCheck

	for _, tool := range defaultRegistry().All() {
		path, err := scanner.LookBinary(tool.Name())
		if err != nil {
			checks = append(checks, doctorCheck{Name: tool.Name(), Detail: "not found in PATH"})
			continue
		}
		checks = append(checks, doctorCheck{Name: tool.Name(), OK: true, Detail: path})
	}

	checks = append(checks, checkOutputDir(outputDirFlag))
	return checks
}

func checkOutputDir(dir string) doctorCheck {
	check := doctorCheck{Name: "output directory", Detail: dir}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		check.Detail = fmt.Sprintf("%s (%v)", dir, err)
		return check
	}
	check.OK = true
	return check
}
