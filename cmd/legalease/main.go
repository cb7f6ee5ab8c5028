// Command legalease runs the document analysis API and its maintenance tasks.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"legalease-backend/config"
	"legalease-backend/dictionary"
	"legalease-backend/logging"
	"legalease-backend/repository"
	"legalease-backend/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "legalease",
	Short: "Legal document analysis backend",
	Long: `legalease detects risky clauses in legal documents, scores them,
and produces extractive summaries and plain-language rewrites.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./legalease.yaml)")

	rootCmd.AddCommand(serveCmd, analyzeCmd, dictionariesCmd, schemaCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// initConfig reads .env, the optional config file and the environment
func initConfig() {
	// Try current directory first, then project root
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load("../../.env")
	}

	v := viper.GetViper()
	config.SetDefaults(v)
	if err := config.BindEnv(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding environment: %v\n", err)
		os.Exit(1)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("legalease")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}

// setup loads the configuration and builds the logger every command uses
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// openDictionaryStore returns the configured dictionary backend. The returned
// close function releases the database pool when one was opened.
func openDictionaryStore(ctx context.Context, cfg *config.Config, st storage.Storage) (dictionary.Store, func(), error) {
	if cfg.DictionaryBackend != config.DictionaryBackendPostgres {
		return dictionary.NewObjectStore(st), func() {}, nil
	}

	pool, err := openPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewDictionaryRepository(pool), pool.Close, nil
}

func openPostgres(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping Postgres: %w", err)
	}
	return pool, nil
}
