package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legalease-backend/dictionary"
	"legalease-backend/handlers"
	"legalease-backend/llm"
	"legalease-backend/repository"
	"legalease-backend/service"
	"legalease-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	fileStorage, err := storage.NewStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	logger.Info("Storage initialized", zap.String("type", string(cfg.Storage.Type)))

	store, closeStore, err := openDictionaryStore(ctx, cfg, fileStorage)
	if err != nil {
		return err
	}
	defer closeStore()

	loader := dictionary.NewLoader(store,
		dictionary.WithLogger(logger),
		dictionary.WithThresholds(cfg.Thresholds),
		dictionary.WithTermOrder(cfg.TermOrder),
	)

	client, err := llm.New(ctx, cfg.LLM, logger)
	if err != nil {
		return err
	}

	// Initialize repositories
	sessions := repository.NewSessionRepository()
	jobs := repository.NewGenerationJobRepository()

	// Initialize services
	documents := service.NewDocumentService(
		service.WithCatalogSource(loader),
		service.WithSessionRepository(sessions),
		service.WithStorage(fileStorage),
		service.WithLogger(logger),
		service.WithMaxFileSize(cfg.MaxFileSize()),
	)
	assistant := service.NewAssistantService(
		service.AssistantWithClient(client),
		service.AssistantWithDocumentService(documents),
		service.AssistantWithSessionRepository(sessions),
		service.AssistantWithGenerationJobRepository(jobs),
		service.AssistantWithLogger(logger),
	)

	gin.SetMode(cfg.GinMode)
	router := handlers.NewRouter(handlers.Services{
		Documents: documents,
		Insights:  service.NewInsightsService(documents),
		Assistant: assistant,
		Quiz:      service.NewQuizService(loader),
	}, logger)

	go pruneSessions(ctx, sessions, cfg.SessionIdleTimeout, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("llm_provider", client.Provider()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// pruneSessions drops idle sessions until ctx is done
func pruneSessions(ctx context.Context, sessions *repository.SessionRepository, maxIdle time.Duration, logger *zap.Logger) {
	if maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(maxIdle / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.PruneIdle(maxIdle); n > 0 {
				logger.Info("Pruned idle sessions", zap.Int("count", n))
			}
		}
	}
}
