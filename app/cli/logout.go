package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and clear the identity file",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	store := newStore()

	record := store.Load()
	if record == nil {
		printer.Print("Not signed in.")
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	// Revoke server-side first; the local file goes regardless.
	client := NewClient(cfg.Server.URL, record.Token)
	if err := client.Logout(ctx); err != nil {
		logger.Debug("server-side logout failed", "error", err)
		printer.Warning("Could not reach volunteer-hub, clearing the local session anyway")
	}

	if err := store.Clear(); err != nil {
		return err
	}

	printer.Success("Signed out")
	return nil
}
