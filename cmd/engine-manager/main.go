// cmd/engine-manager/main.go
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

	"command-engine/internal/brains"
	corebrain "command-engine/internal/brains/core"
	opsbrain "command-engine/internal/brains/ops"
	peoplebrain "command-engine/internal/brains/people"
	revenuebrain "command-engine/internal/brains/revenue"
	"command-engine/internal/common/config"
	"command-engine/internal/common/database"
	"command-engine/internal/common/logger"
	"command-engine/internal/common/observability"
	"command-engine/internal/common/odoo"
	"command-engine/internal/delivery"
	"command-engine/internal/models"
	"command-engine/internal/sales/followup"
	"command-engine/internal/sales/leadrouting"
	"command-engine/internal/store"

	pc "command-engine/internal/workers/intake/process-command"
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

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting engine manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("engine-manager")
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

	// --- Init External Service Clients ---
	crmClient := odoo.NewClient(
		cfg.Integrations.Odoo.BaseURL,
		cfg.Integrations.Odoo.Database,
		cfg.Integrations.Odoo.APIKey,
	)

	emailSender, err := delivery.NewEmailSender(ctx, cfg.AWS.Region, cfg.AWS.EmailFrom)
	if err != nil {
		zapLog.Fatal("failed to create SES email sender", zap.Error(err))
	}
	smsSender, err := delivery.NewSMSSender(ctx, cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("failed to create SNS sms sender", zap.Error(err))
	}

	dispatcher := delivery.NewDispatcher(log)
	dispatcher.Register(models.FollowUpChannelEmail, emailSender)
	dispatcher.Register(models.FollowUpChannelSMS, smsSender)

	zapLog.Info("All external service clients initialized")

	// --- Assemble the brains ---
	leadRouter := leadrouting.NewRouter(&leadrouting.Config{
		HighValueThreshold:   cfg.Routing.HighValueThreshold,
		HighValueAssignees:   cfg.Routing.HighValueAssignees,
		CommercialAssignees:  cfg.Routing.CommercialAssignees,
		ResidentialAssignees: cfg.Routing.ResidentialAssignees,
	})
	scheduler := followup.NewScheduler(&followup.Config{
		FinancingPartner: cfg.FollowUp.FinancingPartner,
		SchedulingLink:   cfg.FollowUp.SchedulingLink,
	})
	leadRepo := store.NewLeadRepository(pg.DB)

	registry := brains.NewRegistry(log)
	registry.Register(opsbrain.NewBrain(log))
	registry.Register(corebrain.NewBrain(log))
	registry.Register(revenuebrain.NewBrain(leadRouter, scheduler, leadRepo, crmClient, dispatcher, obs, log))
	registry.Register(peoplebrain.NewBrain(log))

	// --- Register the intake worker ---
	if cfg.Workers[pc.TaskType].Enabled {
		wcfg := pc.LoadConfig()
		if t := cfg.Workers[pc.TaskType].Timeout; t > 0 {
			wcfg.Timeout = time.Duration(t) * time.Millisecond
		}
		dedupe := store.NewDedupeStore(redis.Client, wcfg.DedupeTTL)
		audit := store.NewAuditIndexer(esClient.Client, cfg.Database.Elasticsearch.AuditIndex)

		handler := pc.NewHandler(wcfg, registry, dedupe, audit, obs, log)
		startWorker(zeebeClient, pc.TaskType, cfg.Workers[pc.TaskType], handler.Handle, zapLog)
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

	zapLog.Info("Engine manager stopped gracefully")
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
