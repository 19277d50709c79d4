package main

import (
	"fmt"

	"github.com/gdg-garage/wedding-rsvp/internal/database"
	"github.com/spf13/cobra"
)

var createDBCmd = &cobra.Command{
	Use:   "create-db",
	Short: "Create the database tables that do not exist yet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if _, err := database.Connect(cfg.DatabasePath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Database %s is up to date.\n", cfg.DatabasePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createDBCmd)
}
