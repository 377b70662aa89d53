package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tourist-guide/internal/config"
	"github.com/tourist-guide/internal/infrastructure/gemini"
	"github.com/tourist-guide/internal/infrastructure/wikidata"
	"github.com/tourist-guide/internal/infrastructure/wikipedia"
	"github.com/tourist-guide/internal/pkg/logger"
	"github.com/tourist-guide/internal/repository/cache"
	redisRepo "github.com/tourist-guide/internal/repository/redis"
	"github.com/tourist-guide/internal/usecase"
	"github.com/tourist-guide/internal/worker"
	"github.com/tourist-guide/internal/worker/place"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Lookup Prefetch Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Strings("prefetch_langs", cfg.Worker.PrefetchLangs))

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

	// 4. Initialize external clients
	wikiClient := wikipedia.NewClient(&cfg.Wiki, log)
	registryRepo := wikidata.NewClient(&cfg.Wiki, log)

	translator, err := gemini.NewClient(context.Background(), &cfg.Gemini, log)
	if err != nil {
		log.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}

	// 5. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use cases
	// streamRepo здесь намеренно nil: прогрев кеша не должен публиковать
	// новые prefetch-задачи.
	lookupUC := usecase.NewLookupUseCase(
		wikiClient,
		wikiClient,
		registryRepo,
		wikiClient,
		translator,
		cacheRepo,
		nil,
		log,
		cfg.Lookup,
		cfg.Cache.LookupCacheTTL,
		nil,
	)

	// 7. Initialize workers
	prefetchWorker := place.NewPrefetchWorker(
		streamRepo,
		lookupUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(prefetchWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
