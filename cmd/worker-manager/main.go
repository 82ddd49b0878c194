// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobmatch-workers/internal/common/config"
	"jobmatch-workers/internal/common/database"
	"jobmatch-workers/internal/common/logger"
	"jobmatch-workers/internal/common/observability"
	"jobmatch-workers/internal/matching"
	"jobmatch-workers/pkg/registry"

	fjp "jobmatch-workers/internal/workers/matching/fetch-job-pool"
	sar "jobmatch-workers/internal/workers/matching/score-and-rank"
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
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

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

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

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

	// --- Load Activity Registry ---
	var scoreInputSchema map[string]interface{}
	reg, err := registry.LoadRegistry(cfg.Matching.RegistryPath)
	if err != nil {
		zapLog.Warn("activity registry not loaded, payload validation disabled",
			zap.String("path", cfg.Matching.RegistryPath),
			zap.Error(err),
		)
	} else if entry := reg.FindByTaskType(sar.TaskType); entry != nil {
		scoreInputSchema = entry.InputSchema
	}

	engine := matching.NewEngine(buildEngineConfig(cfg.Matching))

	// --- Register Workers ---
	if cfg.Workers[fjp.TaskType].Enabled {
		handler := fjp.NewHandler(
			&fjp.Config{
				Index:   cfg.Matching.JobIndex,
				Timeout: time.Duration(cfg.Workers[fjp.TaskType].Timeout) * time.Millisecond,
			},
			esClient.Client, log,
		)
		startWorker(zeebeClient, fjp.TaskType, cfg.Workers[fjp.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[sar.TaskType].Enabled {
		handler := sar.NewHandler(
			&sar.Config{
				CacheTTL: time.Duration(cfg.Matching.ProfileCacheTTL) * time.Second,
				Timeout:  time.Duration(cfg.Workers[sar.TaskType].Timeout) * time.Millisecond,
			},
			engine, pg.DB, redis.Client, scoreInputSchema, log,
		)
		startWorker(zeebeClient, sar.TaskType, cfg.Workers[sar.TaskType], handler.Handle, zapLog)
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_ = shutdownCtx

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// buildEngineConfig translates the deployment config into the engine's
// tunables. The loader fills defaults, so every field is populated.
func buildEngineConfig(mc config.MatchingConfig) *matching.Config {
	engineCfg := matching.DefaultConfig()

	engineCfg.Weights = matching.Weights{
		SkillCoverage:  mc.Weights.SkillCoverage,
		TextSimilarity: mc.Weights.TextSimilarity,
		Preferences:    mc.Weights.Preferences,
	}
	engineCfg.PreferenceDimensions = mc.PreferenceDimensions
	engineCfg.Activity = matching.ActivityWeights{
		Window:           time.Duration(mc.Activity.WindowDays) * 24 * time.Hour,
		AppliedBoost:     mc.Activity.AppliedBoost,
		SavedBoost:       mc.Activity.SavedBoost,
		DismissedPenalty: mc.Activity.DismissedPenalty,
	}
	engineCfg.Caps = matching.CategoryCaps{
		ForYou:         mc.Categories.ForYou,
		CareerGrowth:   mc.Categories.CareerGrowth,
		SkillMatch:     mc.Categories.SkillMatch,
		NewOpportunity: mc.Categories.NewOpportunity,
	}
	engineCfg.FreshnessWindow = time.Duration(mc.FreshnessWindowDays) * 24 * time.Hour
	engineCfg.MaxConcurrency = mc.MaxConcurrency

	if len(mc.Synonyms) > 0 {
		engineCfg.Synonyms = matching.SynonymTable(mc.Synonyms)
	}

	return engineCfg
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
