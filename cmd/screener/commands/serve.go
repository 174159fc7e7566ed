package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/brquant/screener/internal/api"
	"github.com/brquant/screener/internal/api/handlers"
	"github.com/brquant/screener/internal/assistant"
	"github.com/brquant/screener/internal/screener"
	"github.com/brquant/screener/pkg/config"
	"github.com/brquant/screener/pkg/logger"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor da API",
	Long: `Inicia o servidor HTTP consumido pelo frontend.

Endpoints:
  GET  /health              - Health check
  POST /api/screen          - Processa uma planilha colada
  GET  /api/screen          - Resultado atual
  GET  /api/screen/export   - Exporta o resultado em TSV
  POST /api/assistant/ask   - Pergunta ao assistente

Example:
  go run ./cmd/screener serve
  go run ./cmd/screener serve --port 8080`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "porta do servidor (default: PORT ou 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Build the pipeline service
	service := screener.NewService(log)

	// 4. Assistant (optional)
	var ai *assistant.Assistant
	if cfg.Assistant.Enabled {
		provider := assistant.NewGeminiProvider(cfg.Assistant)
		ai = assistant.New(provider, cfg.Assistant, log)
	} else {
		log.Info("Assistant disabled by config")
	}

	// 5. Handlers and router
	screenHandler := handlers.NewScreenHandler(service, log)
	assistantHandler := handlers.NewAssistantHandler(ai, screenHandler, log)
	router := api.NewRouter(screenHandler, assistantHandler, log)

	// 6. Start server with graceful shutdown
	server := api.New(cfg, log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}
