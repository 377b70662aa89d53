package main

// @title Tourist Guide API
// @version 1.0.0
// @description Сервис поиска туристических мест рядом с координатой. Геопоиск всегда выполняется по референсному языку (английская Wikipedia), поэтому набор и порядок кандидатов не зависят от языка клиента. Контент карточек разрешается через Wikidata на целевой язык с деградацией к референсному языку и переводом.
// @description
// @description Основные возможности:
// @description - Поиск ближайших туристических мест по координате и радиусу
// @description - Карточки мест на 22 языках с fallback на английский
// @description - Краткая и расширенная выжимки описания места
// @description - Озвучивание текста (MP3)

// @contact.name API Support
// @contact.email support@tourist-guide.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tourist-guide/docs"
	"github.com/tourist-guide/internal/config"
	httpDelivery "github.com/tourist-guide/internal/delivery/http"
	"github.com/tourist-guide/internal/delivery/http/handler"
	"github.com/tourist-guide/internal/infrastructure/gemini"
	"github.com/tourist-guide/internal/infrastructure/gtts"
	"github.com/tourist-guide/internal/infrastructure/wikidata"
	"github.com/tourist-guide/internal/infrastructure/wikipedia"
	"github.com/tourist-guide/internal/pkg/logger"
	"github.com/tourist-guide/internal/repository/cache"
	redisRepo "github.com/tourist-guide/internal/repository/redis"
	"github.com/tourist-guide/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tourist Guide API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("default_lang", cfg.Lookup.DefaultLang),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 4. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 5. Initialize external clients
	wikiClient := wikipedia.NewClient(&cfg.Wiki, log)
	registryRepo := wikidata.NewClient(&cfg.Wiki, log)
	speechRepo := gtts.NewClient(&cfg.TTS, log)

	translator, err := gemini.NewClient(context.Background(), &cfg.Gemini, log)
	if err != nil {
		log.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}

	log.Info("External clients initialized",
		zap.Bool("generative_enabled", translator.Enabled()))

	// 6. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	lookupUC := usecase.NewLookupUseCase(
		wikiClient,
		wikiClient,
		registryRepo,
		wikiClient,
		translator,
		cacheRepo,
		streamRepo,
		log,
		cfg.Lookup,
		cfg.Cache.LookupCacheTTL,
		cfg.Worker.PrefetchLangs,
	)

	speechUC := usecase.NewSpeechUseCase(speechRepo, &cfg.Lookup, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	lookupHandler := handler.NewLookupHandler(lookupUC, log)
	speechHandler := handler.NewSpeechHandler(speechUC, log)
	configHandler := handler.NewConfigHandler(cfg)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		lookupHandler,
		speechHandler,
		configHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
