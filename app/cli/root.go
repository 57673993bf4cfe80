// Package cli contains all commands for hubctl, the volunteer-hub
// command line client.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	cfg     *CLIConfig
	logger  *slog.Logger
	version = "dev"
)

// CLIConfig represents the complete hubctl configuration
type CLIConfig struct {
	Server   ServerConfig   `mapstructure:"server"`
	Identity IdentityConfig `mapstructure:"identity"`
	Output   OutputConfig   `mapstructure:"output"`
}

// ServerConfig points at the volunteer-hub facade
type ServerConfig struct {
	URL string `mapstructure:"url"`
}

// IdentityConfig controls where the saved session lives
type IdentityConfig struct {
	File string `mapstructure:"file"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hubctl",
	Short: "volunteer-hub command line client",
	Long: `hubctl talks to a volunteer-hub instance from the terminal.

It keeps a signed-in session in a local identity file and reuses it
across invocations until you log out or the server revokes it.

Example usage:
  hubctl login --email a@b.org --role VOLUNTEER   # Sign in and save the session
  hubctl whoami                                   # Show the current identity
  hubctl opportunities 42                         # Inspect an opportunity
  hubctl apply 42 --cover-letter "..."            # Apply to an opportunity
  hubctl logout                                   # End the session`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .hubctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("server", "", "volunteer-hub base URL")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	var err error
	cfg, err = loadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger.Debug("configuration loaded",
		"server", cfg.Server.URL,
		"identity_file", cfg.Identity.File,
	)

	return nil
}

// loadConfig reads configuration from file and environment variables
func loadConfig(cfgFile string) (*CLIConfig, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search paths for .hubctl.yaml
		v.SetConfigName(".hubctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hubctl")
	}

	// Environment variables
	v.SetEnvPrefix("HUBCTL")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Server.URL == "" {
		return nil, fmt.Errorf("server.url must not be empty")
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.url", "http://localhost:9600")
	v.SetDefault("identity.file", defaultIdentityPath())
	v.SetDefault("output.colors", true)
}

func defaultIdentityPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".hubctl-identity.json")
	}
	return filepath.Join(home, ".hubctl", "identity.json")
}

// newStore returns the identity store at the configured path
func newStore() *IdentityStore {
	return NewIdentityStore(cfg.Identity.File, logger)
}

// newPrinter honors the configured color preference
func newPrinter() *Printer {
	return NewPrinter(cfg.Output.Colors)
}
