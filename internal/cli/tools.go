package cli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available scanner tools",
	Long:  "Shows every bundled tool adapter, its default arguments, and the artifacts it produces.",
	Run:   runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Name", "Description", "Default Args", "Artifacts"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)

	for _, tool := range defaultRegistry().All() {
		artifacts := "json"
		if tool.TextReport() {
			artifacts = "text, json"
		}
		table.Append([]string{tool.Name(), tool.Description(), tool.DefaultArgs(), artifacts})
	}
	table.Render()
}
