// cmd/server/main.go
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

	"loksarthi/internal/ai"
	"loksarthi/internal/ai/gemini"
	"loksarthi/internal/common/aws"
	"loksarthi/internal/common/config"
	"loksarthi/internal/common/database"
	"loksarthi/internal/common/logger"
	"loksarthi/internal/common/observability"
	"loksarthi/internal/orchestrator"
	"loksarthi/internal/scheme"
	"loksarthi/internal/server"
	"loksarthi/internal/services/financial"
	"loksarthi/internal/services/rti"
	"loksarthi/internal/session"
	"loksarthi/internal/users"
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
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting LokSarthi server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name, os.Getenv("JAEGER_ENDPOINT"))
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Load scheme catalog (fatal on failure) ---
	catalog, err := scheme.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		zapLog.Fatal("scheme catalog load failed", zap.Error(err))
	}
	zapLog.Info("Scheme catalog loaded", zap.Int("schemes", catalog.Len()))

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	userStore := users.NewStore(pg.GetDB(), log)
	if err := userStore.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("users schema setup failed", zap.Error(err))
	}

	sessionStore := session.NewStore(redis.GetClient(), cfg.Session.TTLDays, log)

	// --- Init AI generator ---
	generator, err := gemini.NewGenerator(ctx, cfg.AI)
	if err != nil {
		zapLog.Fatal("generator init failed", zap.Error(err))
	}
	zapLog.Info("Text generator initialized", zap.String("model", cfg.AI.Model))

	// --- Init AWS language clients (optional) ---
	var translator orchestrator.Translator
	var speech orchestrator.SpeechSynthesizer
	if cfg.Language.TTSEnabled {
		translateClient, err := aws.NewTranslateClient(ctx, cfg.Language.AWSRegion)
		if err != nil {
			zapLog.Warn("translate client init failed, continuing without translation", zap.Error(err))
		} else {
			translator = translateClient
		}

		pollyClient, err := aws.NewPollyClient(ctx, cfg.Language.AWSRegion, cfg.Language.PollyVoice)
		if err != nil {
			zapLog.Warn("polly client init failed, continuing without audio", zap.Error(err))
		} else {
			speech = pollyClient
		}
	}

	// --- Assemble the pipeline ---
	orch := orchestrator.New(orchestrator.Options{
		Intents:       ai.NewClassifier(generator, log),
		Generator:     generator,
		Matcher:       scheme.NewMatcher(catalog),
		Completer:     scheme.NewProfileCompleter(cfg.Profiling.CompleteThreshold),
		RTI:           rti.NewAssistant(generator, log),
		Financial:     financial.NewAdvisor(generator, log),
		Translator:    translator,
		Speech:        speech,
		Observability: obs,
		AskThreshold:  cfg.Profiling.AskThreshold,
		MaxResults:    cfg.Profiling.MaxResults,
		Logger:        log,
	})

	srv := server.New(server.Options{
		Processor:      orch,
		Sessions:       sessionStore,
		Profiles:       userStore,
		Catalog:        catalog,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Millisecond,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Version:        cfg.App.Version,
		Logger:         log,
	})

	// --- Debug listener: metrics + pprof ---
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		debugAddr := fmt.Sprintf(":%d", cfg.Server.DebugPort)
		zapLog.Info("Debug listener starting", zap.String("addr", debugAddr))
		if err := http.ListenAndServe(debugAddr, nil); err != nil {
			zapLog.Error("debug listener failed", zap.Error(err))
		}
	}()

	// --- API listener ---
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.Server.RequestTimeout)*time.Millisecond + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLog.Info("API listener starting", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("api listener failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown did not complete cleanly", zap.Error(err))
	}

	zapLog.Info("Server stopped")
}
