// Metabuild orchestrator server — provides the HTTP API, manages queue
// workers, and drives runs through the plan/generate/evaluate/repair
// pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/forgeworks/metabuild/pkg/agent"
	"github.com/forgeworks/metabuild/pkg/api"
	"github.com/forgeworks/metabuild/pkg/blobstore"
	"github.com/forgeworks/metabuild/pkg/chaos"
	"github.com/forgeworks/metabuild/pkg/cleanup"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/database"
	"github.com/forgeworks/metabuild/pkg/events"
	"github.com/forgeworks/metabuild/pkg/evaluator"
	"github.com/forgeworks/metabuild/pkg/masking"
	"github.com/forgeworks/metabuild/pkg/orchestrator"
	"github.com/forgeworks/metabuild/pkg/queue"
	"github.com/forgeworks/metabuild/pkg/scheduler"
	"github.com/forgeworks/metabuild/pkg/services"
	"github.com/forgeworks/metabuild/pkg/tools"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting metabuild",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: leases this pod held before a
	// crash are released so their steps requeue immediately.
	if n, err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan covers the rest
	} else if n > 0 {
		slog.Info("Released startup orphan leases", "count", n)
	}

	// 4. Shared infrastructure: masking, blobs, publisher
	masker := masking.NewService()
	blobs := blobstore.NewEntStore(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB())

	// 5. LLM client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	llmAddr := getEnv("LLM_SERVICE_ADDR", cfg.LLM.Addr)
	llmClient, err := agent.NewGRPCLLMClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", llmAddr)

	// 6. Agent catalogue with the evaluation harness
	kernel := tools.NewLocalKernel(masker)
	harness := evaluator.NewHarness(cfg.Evaluator, kernel, tools.Policy{})
	catalogue := agent.NewCatalogue(llmClient, cfg.LLM, harness, cfg.Evaluator)

	// 7. Scheduler, breakers, and the step executor
	sched := scheduler.NewScheduler(cfg.Scheduler, dbClient.Client)
	breakers := scheduler.NewBreakerService(dbClient.Client, cfg.Scheduler.Breaker)
	executor := orchestrator.NewExecutor(
		catalogue,
		blobs,
		chaos.NewInjector(cfg.Chaos),
		masker,
		services.NewRunService(dbClient.Client),
		services.NewArtifactService(dbClient.Client, blobs),
		services.NewFailureService(dbClient.Client, masker),
		services.NewBudgetService(dbClient.Client),
		services.NewTimelineService(dbClient.Client),
		breakers,
	)

	// 8. Worker pool (before the HTTP server takes submissions)
	workerPool := queue.NewWorkerPool(dbClient.Client, dbClient, cfg.Queue, executor, publisher, podID)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Orchestrator driver plus the LISTEN link that wakes it when a
	// step finishes on any pod
	qsvc := queue.NewService(dbClient.Client, cfg.Queue)
	driver := orchestrator.NewDriver(dbClient.Client, cfg, blobs, masker, qsvc, sched, breakers, catalogue, publisher)
	driver.Start(ctx)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), driver.HandleNotification)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	if err := notifyListener.Subscribe(ctx, events.OrchestratorChannel); err != nil {
		slog.Error("Failed to subscribe to orchestrator channel", "error", err)
		os.Exit(1)
	}

	// 10. Retention loop
	var retention *cleanup.Service
	if cfg.Retention.Enabled {
		retention = cleanup.NewService(cfg.Retention, dbClient.Client)
		retention.Start(ctx)
		defer retention.Stop()
	}

	// 11. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, blobs, workerPool, driver)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Metabuild started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: driver first so nothing new dispatches, then
	// the pool drains in-flight steps, then the HTTP server.
	driver.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete steps will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
