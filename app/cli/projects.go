package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List your organization's opportunities",
	Long: `List the opportunities the signed-in organization has published.

Examples:
  hubctl projects`,
	Args: cobra.NoArgs,
	RunE: runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	_, client, err := authedClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	opps, err := client.MyProjects(ctx)
	if err != nil {
		return describeAPIError(err, printer)
	}

	if len(opps) == 0 {
		printer.Print("No opportunities published yet.")
		return nil
	}
	printOpportunityTable(printer, opps)
	return nil
}
