package main

import (
	"fmt"
	"slices"

	"legalease-backend/dictionary"
	"legalease-backend/storage"

	"github.com/spf13/cobra"
)

var dictionariesCmd = &cobra.Command{
	Use:   "dictionaries",
	Short: "Manage the risk, legal term and quiz dictionaries",
}

var dictionariesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default document for every missing dictionary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDictionaryStore(cmd, func(store dictionary.Store) error {
			created, err := dictionary.EnsureDefaults(cmd.Context(), store)
			if err != nil {
				return err
			}
			if len(created) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All dictionaries already exist")
				return nil
			}
			for _, category := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", category)
			}
			return nil
		})
	},
}

var dictionariesShowCmd = &cobra.Command{
	Use:       "show <category>",
	Short:     "Print a stored dictionary",
	Args:      cobra.ExactArgs(1),
	ValidArgs: dictionary.Categories,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(dictionary.Categories, args[0]) {
			return fmt.Errorf("%w: %s", dictionary.ErrUnknownCategory, args[0])
		}
		return withDictionaryStore(cmd, func(store dictionary.Store) error {
			data, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		})
	},
}

func init() {
	dictionariesCmd.AddCommand(dictionariesInitCmd, dictionariesShowCmd)
}

func withDictionaryStore(cmd *cobra.Command, fn func(dictionary.Store) error) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	fileStorage, err := storage.NewStorage(cmd.Context(), cfg.Storage)
	if err != nil {
		return err
	}
	store, closeStore, err := openDictionaryStore(cmd.Context(), cfg, fileStorage)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store)
}
