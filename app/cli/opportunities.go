package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"volunteer-hub/app/domain"
)

var opportunitiesCmd = &cobra.Command{
	Use:   "opportunities [id]",
	Short: "Browse volunteering opportunities",
	Long: `List every published opportunity, or fetch one by ID, as the
signed-in volunteer.

Examples:
  hubctl opportunities
  hubctl opportunities 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpportunities,
}

func init() {
	rootCmd.AddCommand(opportunitiesCmd)
}

func runOpportunities(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	_, client, err := authedClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	if len(args) == 0 {
		opps, err := client.ListOpportunities(ctx)
		if err != nil {
			return describeAPIError(err, printer)
		}
		printOpportunityTable(printer, opps)
		return nil
	}

	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("opportunity id must be a positive number, got %q", args[0])
	}

	opp, err := client.GetOpportunity(ctx, uint(id))
	if err != nil {
		return describeAPIError(err, printer)
	}

	printOpportunityTable(printer, []domain.Opportunity{*opp})
	if opp.Description != "" {
		printer.Print("\n%s", strings.TrimSpace(opp.Description))
	}
	return nil
}

func printOpportunityTable(printer *Printer, opps []domain.Opportunity) {
	rows := make([][]string, 0, len(opps))
	for _, opp := range opps {
		rows = append(rows, []string{
			fmt.Sprintf("%d", opp.ID),
			opp.Title,
			opp.Category,
			opp.Location,
			fmt.Sprintf("%d", opp.HoursRequired),
			opp.StartDate + " to " + opp.EndDate,
		})
	}
	printer.Table([]string{"ID", "TITLE", "CATEGORY", "LOCATION", "HOURS", "DATES"}, rows)
}

// authedClient loads the saved session and builds a client around it.
func authedClient() (*IdentityRecord, *Client, error) {
	record := newStore().Load()
	if record == nil {
		return nil, nil, fmt.Errorf("not signed in, run `hubctl login` first")
	}
	return record, NewClient(cfg.Server.URL, record.Token), nil
}

// describeAPIError turns a revoked session into a clean local state.
func describeAPIError(err error, printer *Printer) error {
	if apiErr, ok := err.(*APIError); ok && apiErr.IsUnauthorized() {
		_ = newStore().Clear()
		printer.Warning("Session expired, run `hubctl login` again")
		return fmt.Errorf("session no longer valid")
	}
	return err
}
