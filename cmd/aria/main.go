// ARIA core server. Hosts the chat websocket, the agent orchestrator,
// the proactive delivery router, and the background job fleet.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ariahq/aria/pkg/agent"
	"github.com/ariahq/aria/pkg/api"
	"github.com/ariahq/aria/pkg/budget"
	"github.com/ariahq/aria/pkg/chat"
	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/database"
	"github.com/ariahq/aria/pkg/delivery"
	"github.com/ariahq/aria/pkg/integrations"
	"github.com/ariahq/aria/pkg/jobs"
	"github.com/ariahq/aria/pkg/llm"
	"github.com/ariahq/aria/pkg/services"
)

const shutdownTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}
	logger := setupLogger()

	ctx := context.Background()

	// Configuration
	gatewayCfg := config.LoadGatewayFromEnv()
	governorCfg := config.LoadCostGovernorFromEnv()
	orchestratorCfg := config.LoadOrchestratorFromEnv()
	jobsCfg := config.LoadJobsFromEnv()
	serverCfg := config.LoadServerFromEnv()

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("Error closing database client", "error", err)
		}
	}()
	logger.Info("Connected to PostgreSQL database")

	// Services
	userService := services.NewUserService(dbClient.Client)
	usageService := services.NewUsageService(dbClient.Client, dbClient.DB())
	notificationService := services.NewNotificationService(dbClient.Client)
	briefingService := services.NewBriefingService(dbClient.Client)
	loginQueueService := services.NewLoginQueueService(dbClient.Client)
	signalService := services.NewSignalService(dbClient.Client)
	digestService := services.NewDigestService(dbClient.Client)
	debriefService := services.NewDebriefService(dbClient.Client)
	commitmentService := services.NewCommitmentService(dbClient.Client)
	conversationService := services.NewConversationService(dbClient.Client)
	goalService := services.NewGoalService(dbClient.Client)
	logger.Info("Services initialized")

	// Cost governor and LLM gateway
	governor := budget.NewGovernor(governorCfg, usageService, userService, logger)

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		logger.Error("ANTHROPIC_API_KEY is required")
		os.Exit(1)
	}
	vendor, err := llm.NewAnthropicVendor(apiKey, gatewayCfg, logger)
	if err != nil {
		logger.Error("Failed to initialize LLM vendor", "error", err)
		os.Exit(1)
	}
	gateway := llm.NewGateway(vendor, governor, gatewayCfg, logger)
	logger.Info("LLM gateway initialized", "model", gatewayCfg.Model)

	// Delivery
	hub := delivery.NewHub(serverCfg.WSWriteTimeout, logger)
	router := delivery.NewRouter(notificationService, briefingService, loginQueueService, hub, jobsCfg.DedupWindow, logger)

	// Integration broker
	broker := integrations.NewBroker(
		getEnv("BROKER_BASE_URL", "http://localhost:9200"),
		os.Getenv("BROKER_API_KEY"),
		logger,
	)
	calendar := integrations.NewCalendarSource(broker, logger)

	// Agents
	orchestrator := agent.NewOrchestrator(orchestratorCfg, []agent.Agent{
		agent.NewScout(gateway, logger),
		agent.NewAnalyst(gateway, logger),
		agent.NewStrategist(gateway, logger),
		agent.NewScribe(gateway, logger),
		agent.NewVerifier(gateway, logger),
		agent.NewHunter(gateway, logger),
		agent.NewOperator(broker, logger),
	}, logger)
	approvals := agent.NewApprovals(broker, logger)
	logger.Info("Agent orchestrator initialized",
		"max_concurrent", orchestratorCfg.MaxConcurrentAgents,
		"token_cap", orchestratorCfg.MaxTokens)

	// Chat
	chatService := chat.NewService(gateway, conversationService, loginQueueService, hub, logger)

	// Background jobs
	runner := jobs.NewRunner(logger)
	for _, job := range []jobs.Job{
		jobs.NewSignalScanJob(userService, signalService, orchestrator, router, jobsCfg, logger),
		jobs.NewDebriefPromptJob(userService, calendar, debriefService, router, jobsCfg, logger),
		jobs.NewCommitmentSweepJob(userService, commitmentService, router, jobsCfg, logger),
		jobs.NewWeeklyDigestJob(userService, digestService, signalService, briefingService, router, jobsCfg, logger),
	} {
		if err := runner.Register(job); err != nil {
			logger.Error("Failed to register job", "job", job.Name(), "error", err)
			os.Exit(1)
		}
	}
	runner.Start()
	defer runner.Stop()
	logger.Info("Background job runner started")

	// HTTP server
	authSecret := os.Getenv("API_AUTH_SECRET")
	if authSecret == "" {
		logger.Error("API_AUTH_SECRET is required")
		os.Exit(1)
	}
	server := api.NewServer(
		dbClient,
		api.NewHMACAuthenticator(authSecret),
		hub,
		chatService,
		approvals,
		notificationService,
		usageService,
		governor,
		goalService,
		broker,
		gateway,
		logger,
	)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + serverCfg.HTTPPort
		logger.Info("HTTP server listening", "addr", addr)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	logger.Info("ARIA started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		logger.Error("Server error triggered shutdown", "error", err)
	}

	// Stop scheduling new job runs before draining HTTP so in-flight work
	// finishes against a live server.
	runner.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("ARIA stopped")
}
