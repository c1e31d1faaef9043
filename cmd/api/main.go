package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lockfocus-assistant/config"
	"lockfocus-assistant/config/sqlite"
	_ "lockfocus-assistant/docs" // Swagger docs
	chatUC "lockfocus-assistant/internal/chat/usecase"
	"lockfocus-assistant/internal/executive"
	"lockfocus-assistant/internal/httpserver"
	memoryRepo "lockfocus-assistant/internal/memory/repository"
	memorySQLite "lockfocus-assistant/internal/memory/repository/sqlite"
	"lockfocus-assistant/internal/middleware"
	"lockfocus-assistant/internal/rules"
	taskUC "lockfocus-assistant/internal/task/usecase"
	"lockfocus-assistant/internal/taskparser"
	"lockfocus-assistant/pkg/gemini"
	"lockfocus-assistant/pkg/log"
)

// @title       Lock Focus Assistant API
// @description ADHD support chat backend: safety net, rule-based replies, task extraction and Gemini responses.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Lock Focus assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Rules engine
	engine, err := rules.Load(cfg.Rules.Path)
	if err != nil {
		logger.Error(ctx, "Failed to load rules: ", err)
		return
	}
	logger.Infof(ctx, "Rules engine loaded with %d rules", len(engine.Rules()))

	// 4. Gemini client (optional)
	geminiClient := gemini.New(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		APIURL:  cfg.Gemini.APIURL,
		Timeout: cfg.Gemini.Timeout,
	})
	if geminiClient.Available() {
		logger.Infof(ctx, "Gemini API configured (model %s)", geminiClient.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing: running in fallback mode")
	}

	// 5. Memory store (optional)
	var memory memoryRepo.Repository
	if cfg.Memory.Enabled {
		db, err := sqlite.Connect(ctx, cfg.Memory)
		if err != nil {
			logger.Error(ctx, "Failed to open memory store: ", err)
			return
		}
		defer sqlite.Disconnect(ctx, db)

		if err := memorySQLite.Migrate(ctx, db); err != nil {
			logger.Error(ctx, "Failed to migrate memory store: ", err)
			return
		}
		memory = memorySQLite.New(db, logger)
		logger.Infof(ctx, "Memory store opened at %s", cfg.Memory.Path)
	} else {
		logger.Warn(ctx, "Memory store disabled: patterns and tasks are not persisted")
	}

	// 6. Domains
	parser := taskparser.New()
	analyzer := executive.New(executive.Options{
		SessionTTL:  cfg.Executive.SessionTTL,
		MaxSessions: cfg.Executive.MaxSessions,
	})
	chat := chatUC.New(logger, engine, parser, geminiClient, analyzer, memory, chatUC.Options{
		HistoryLimit: cfg.Chat.HistoryLimit,
		SessionTTL:   cfg.Chat.SessionTTL,
		MaxSessions:  cfg.Chat.MaxSessions,
	})
	task := taskUC.New(logger, parser)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		ChatUseCase: chat,
		TaskUseCase: task,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
