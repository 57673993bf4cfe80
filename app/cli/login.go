package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"volunteer-hub/app/domain"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and save the session locally",
	Long: `Authenticate against volunteer-hub and persist the session in the
identity file, so later commands run as the signed-in user.

Examples:
  hubctl login --email vol@example.org --role VOLUNTEER
  hubctl login --email admin@shelter.org --role ORGANIZATION_ADMIN`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password (prompted if omitted)")
	loginCmd.Flags().String("role", string(domain.RoleVolunteer), "role to sign in as (VOLUNTEER or ORGANIZATION_ADMIN)")
	_ = loginCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	roleArg, _ := cmd.Flags().GetString("role")

	printer := newPrinter()

	role, err := domain.ParseRole(roleArg)
	if err != nil {
		return fmt.Errorf("unknown role %q, expected VOLUNTEER or ORGANIZATION_ADMIN", roleArg)
	}

	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	client := NewClient(cfg.Server.URL, "")
	record, err := client.Login(ctx, email, password, role)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.IsUnauthorized() {
			return fmt.Errorf("invalid email or password")
		}
		return err
	}

	if err := newStore().Save(record); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	printer.Success("Signed in as %s (%s)", record.Identity.Email, record.Identity.Role)
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}
