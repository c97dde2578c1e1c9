// cmd/gameforge/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gameforge/internal/ai"
	"gameforge/internal/api"
	"gameforge/internal/catalog"
	"gameforge/internal/classify"
	"gameforge/internal/common/config"
	"gameforge/internal/common/database"
	"gameforge/internal/common/logger"
	"gameforge/internal/common/metrics"
	"gameforge/internal/common/observability"
	"gameforge/internal/generation"
	"gameforge/internal/jobs"
	"gameforge/internal/retrieval"
	"gameforge/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting gameforge...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("gameforge")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init AI provider with retry ---
	var provider ai.Provider
	err = retryWithBackoff(func() error {
		var err error
		provider, err = ai.NewProvider(cfg)
		return err
	}, 5, 2*time.Second, zapLog, "AI provider initialization")
	if err != nil {
		zapLog.Fatal("AI provider failed after retries", zap.Error(err))
	}
	defer provider.Close()
	zapLog.Info("AI provider ready", zap.String("provider", cfg.AI.Provider))

	// --- Load template catalog ---
	catalogStore := catalog.NewStore()
	err = retryWithBackoff(func() error {
		return loadCatalog(ctx, cfg, catalogStore, provider)
	}, 5, 2*time.Second, zapLog, "catalog load")
	if err != nil {
		zapLog.Fatal("catalog load failed after retries", zap.Error(err))
	}
	metrics.CatalogSize.Set(float64(catalogStore.Count()))
	zapLog.Info("template catalog loaded", zap.Int("templates", catalogStore.Count()))

	// --- Init job store ---
	jobStore, err := newJobStore(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("job store initialization failed", zap.Error(err))
	}
	defer jobStore.Close()
	zapLog.Info("job store ready", zap.String("backend", cfg.Jobs.Store))

	// --- Wire the pipeline ---
	typeRegistry := registry.Default()
	classifier := classify.NewClassifier(typeRegistry)
	retriever := retrieval.NewRetriever(catalogStore, provider, classifier, retrieval.Options{
		TopK:               cfg.Retrieval.TopK,
		OverrideConfidence: cfg.Retrieval.OverrideConfidence,
		MaxContextBytes:    cfg.Retrieval.MaxContextBytes,
		EmbedTimeout:       cfg.Retrieval.EmbedTimeoutDuration(),
	}, log)
	generator := generation.NewGenerator(provider, generation.NewValidator(typeRegistry),
		cfg.Generation.TimeoutDuration(), log)
	synthesizer := generation.NewSynthesizer(typeRegistry)
	manager := jobs.NewManager(jobStore, retriever, generator, synthesizer, classifier,
		obs, log, cfg.Generation.MaxPromptLength)

	// --- API server ---
	apiServer := api.NewServer(manager, catalogStore, provider, log)
	httpServer := apiServer.NewHTTPServer(cfg.Server)

	go func() {
		zapLog.Info("API server listening", zap.String("address", cfg.Server.ListenAddress))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("API server failed", zap.Error(err))
		}
	}()

	// --- Health & Metrics Server ---
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Metrics server listening", zap.String("address", cfg.Server.MetricsAddress))
		if err := http.ListenAndServe(cfg.Server.MetricsAddress, nil); err != nil {
			zapLog.Error("Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("API server shutdown failed", zap.Error(err))
	}

	// Let in-flight jobs finish so no job is stranded in generating.
	manager.Wait()

	zapLog.Info("gameforge stopped gracefully")
}

// loadCatalog publishes the template catalog: a pre-embedded file when
// configured, otherwise the built-in seed indexed at startup.
func loadCatalog(ctx context.Context, cfg *config.Config, store *catalog.Store, embedder ai.Embedder) error {
	if cfg.Catalog.Path != "" {
		templates, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return err
		}
		// A file catalog may have been built against a different embedding
		// model; refuse to serve vectors of the wrong width.
		if err := catalog.ValidateDimensions(templates, cfg.Catalog.Dimensions); err != nil {
			return err
		}
		store.Load(templates)
		return nil
	}

	templates, err := catalog.EmbedAll(ctx, embedder, catalog.Seed())
	if err != nil {
		return err
	}
	store.Load(templates)
	return nil
}

// newJobStore builds the configured job store backend.
func newJobStore(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (jobs.Store, error) {
	switch cfg.Jobs.Store {
	case "memory":
		return jobs.NewMemoryStore(), nil

	case "redis":
		var client *database.RedisClient
		err := retryWithBackoff(func() error {
			var err error
			client, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return client.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis initialization")
		if err != nil {
			return nil, err
		}
		ttl := time.Duration(cfg.Jobs.TTL) * time.Second
		return jobs.NewRedisStore(client, ttl), nil

	case "postgres":
		var client *database.PostgresClient
		err := retryWithBackoff(func() error {
			var err error
			client, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return client.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "PostgreSQL initialization")
		if err != nil {
			return nil, err
		}
		store := jobs.NewPostgresStore(client)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown job store backend: %s", cfg.Jobs.Store)
	}
}
