package main

import (
	"log/slog"
	"os"

	"github.com/gdg-garage/wedding-rsvp/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:          "rsvp",
	Short:        "Wedding RSVP service",
	Long:         `Registration site for wedding guests. Guests register and change their registration through a personal link; the organisers list and export all registrations.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", os.Getenv("RSVP_CONFIG_FILE"),
		"config file (yaml, toml or json); environment variables take precedence")
}

// loadDotEnv reads .env from the working directory when it exists.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
