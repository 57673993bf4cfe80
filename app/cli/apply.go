package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <opportunity-id>",
	Short: "Apply to a volunteering opportunity",
	Long: `Submit an application for an opportunity as the signed-in volunteer.

Examples:
  hubctl apply 42 --cover-letter "I have weekends free"
  hubctl apply 42`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List your applications",
	RunE:  runApplications,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(applicationsCmd)

	applyCmd.Flags().String("cover-letter", "", "cover letter text")
}

func runApply(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("opportunity id must be a positive number, got %q", args[0])
	}
	coverLetter, _ := cmd.Flags().GetString("cover-letter")

	printer := newPrinter()
	_, client, err := authedClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	app, err := client.Apply(ctx, uint(id), coverLetter)
	if err != nil {
		return describeAPIError(err, printer)
	}

	printer.Success("Applied to opportunity %d (application %d, status %s)",
		app.OpportunityID, app.ID, app.Status)
	return nil
}

func runApplications(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	_, client, err := authedClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	apps, err := client.MyApplications(ctx)
	if err != nil {
		return describeAPIError(err, printer)
	}
	if len(apps) == 0 {
		printer.Print("No applications yet.")
		return nil
	}

	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, []string{
			fmt.Sprintf("%d", app.ID),
			fmt.Sprintf("%d", app.OpportunityID),
			string(app.Status),
			app.CreatedAt.Format("2006-01-02"),
		})
	}
	printer.Table([]string{"ID", "OPPORTUNITY", "STATUS", "SUBMITTED"}, rows)
	return nil
}
