package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	Long: `Display the identity behind the saved session, verified against
the server. A session the server no longer honors is cleared locally.

Examples:
  hubctl whoami
  hubctl whoami --json`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().Bool("json", false, "output as JSON")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	printer := newPrinter()
	store := newStore()

	record := store.Load()
	if record == nil {
		printer.Print("Not signed in.")
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	client := NewClient(cfg.Server.URL, record.Token)
	identity, err := client.Session(ctx)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.IsUnauthorized() {
			_ = store.Clear()
			printer.Warning("Session expired, run `hubctl login` again")
			return nil
		}
		return err
	}
	if identity == nil {
		_ = store.Clear()
		printer.Print("Not signed in.")
		return nil
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(identity)
	}

	printer.Table(
		[]string{"ID", "EMAIL", "NAME", "ROLE"},
		[][]string{{
			fmt.Sprintf("%d", identity.ID),
			identity.Email,
			identity.DisplayName,
			string(identity.Role),
		}},
	)
	return nil
}
