package main

import (
	"errors"
	"fmt"

	"legalease-backend/repository"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the Postgres dictionaries table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}
		pool, err := openPostgres(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := repository.NewDictionaryRepository(pool).CreateSchema(cmd.Context()); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		logger.Info("Schema created")
		return nil
	},
}
