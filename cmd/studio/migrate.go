package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shubh-37/inflections-studio/internal/database"
)

func newMigrateCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the generation history tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cc.config
			if !cfg.HistoryEnabled() {
				return errors.New("DATABASE_URL is not configured")
			}

			db, err := database.NewDB(cmd.Context(), cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns, cc.logger)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if err := database.CreateTables(cmd.Context(), db.Pool); err != nil {
				return fmt.Errorf("failed to create tables: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History tables are up to date")
			return nil
		},
	}
}
