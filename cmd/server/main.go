package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"painmap/internal/config"
	"painmap/internal/core"
	"painmap/internal/db"
	"painmap/internal/export"
	httpserver "painmap/internal/http"
	"painmap/internal/llm"
	"painmap/internal/metrics"
	"painmap/internal/store"

	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	storage, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}
	defer closeStorage()

	var collector *metrics.Collector
	if cfg.EnableMetrics {
		collector = metrics.NewCollector()
	}

	client := newLLMClient(cfg)
	if !providerKeyConfigured(cfg) {
		logger.Warn("no API key configured for the diagnosis provider; diagnosis requests will fail",
			zap.String("provider", cfg.LLMProvider))
	}
	var observer core.Observer
	if collector != nil {
		observer = collector
	}
	diagnosis := core.NewDiagnosisService(client, logger.Named("diagnosis"), observer)

	var archiver export.Archiver
	if cfg.ReportBucket != "" {
		s3Archiver, err := export.NewS3Archiver(ctx, cfg.ReportBucket, cfg.AWSRegion)
		if err != nil {
			logger.Fatal("failed to configure report archiving", zap.Error(err))
		}
		archiver = s3Archiver
	}

	var corsOrigins []string
	if cfg.EnableCORS {
		corsOrigins = cfg.CORSOrigins
	}
	srv, err := httpserver.NewServer(httpserver.Options{
		Storage:       storage,
		Diagnosis:     diagnosis,
		Archiver:      archiver,
		Metrics:       collector,
		Logger:        logger,
		MaxImageBytes: int64(cfg.MaxImageBytes),
		CORSOrigins:   corsOrigins,
	})
	if err != nil {
		logger.Fatal("failed to construct server", zap.Error(err))
	}

	httpSrv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("address", httpSrv.Addr),
			zap.String("environment", cfg.Environment),
			zap.String("storage", cfg.StorageBackend),
			zap.String("provider", client.Name()))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level
	return zcfg.Build()
}

// openStorage connects the configured durable backend. The returned func
// releases it.
func openStorage(ctx context.Context, cfg *config.Config) (store.Storage, func(), error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := dbConn.PingContext(pingCtx); err != nil {
			dbConn.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		if err := db.Migrate(ctx, dbConn); err != nil {
			dbConn.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return db.NewRepository(dbConn), func() { dbConn.Close() }, nil
	case config.StorageMongo:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return db.NewMongoRepository(client, cfg.MongoDatabase), closeFn, nil
	default:
		return store.NewMemoryStorage(), func() {}, nil
	}
}

func newLLMClient(cfg *config.Config) llm.Client {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.MaxTokens)
	case config.ProviderGemini:
		return llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.MaxTokens)
	default:
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.MaxTokens)
	}
}

func providerKeyConfigured(cfg *config.Config) bool {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return llm.KeyConfigured(cfg.OpenAIAPIKey)
	case config.ProviderGemini:
		return llm.KeyConfigured(cfg.GeminiAPIKey)
	default:
		return llm.KeyConfigured(cfg.AnthropicAPIKey)
	}
}
