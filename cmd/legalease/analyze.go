package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"legalease-backend/dictionary"
	"legalease-backend/service"
	"legalease-backend/storage"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a local document and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()
	ctx := cmd.Context()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if int64(len(data)) > cfg.MaxFileSize() {
		return fmt.Errorf("%w: %d bytes", service.ErrFileTooLarge, len(data))
	}

	fileStorage, err := storage.NewStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	store, closeStore, err := openDictionaryStore(ctx, cfg, fileStorage)
	if err != nil {
		return err
	}
	defer closeStore()

	documents := service.NewDocumentService(
		service.WithCatalogSource(dictionary.NewLoader(store,
			dictionary.WithLogger(logger),
			dictionary.WithThresholds(cfg.Thresholds),
			dictionary.WithTermOrder(cfg.TermOrder),
		)),
		service.WithLogger(logger),
	)

	doc, err := documents.Process(ctx, filepath.Base(args[0]), data)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
