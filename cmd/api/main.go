package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"assistant-trigger/config"
	"assistant-trigger/internal/fetcher"
	"assistant-trigger/internal/httpserver"
	"assistant-trigger/internal/orchestrator"
	"assistant-trigger/internal/prompt"
	"assistant-trigger/internal/trigger"
	"assistant-trigger/internal/webhook"
	"assistant-trigger/pkg/gitlab"
	"assistant-trigger/pkg/log"
)

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

	logger.Info(ctx, "Starting assistant trigger service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "GitLab URL: %s", cfg.GitLab.URL)

	// 3. GitLab client
	gitlabClient := gitlab.NewClient(gitlab.Config{
		BaseURL: cfg.GitLab.URL,
		Token:   cfg.GitLab.Token,
		Timeout: cfg.GitLab.Timeout,
	})

	// 4. Use cases
	triggerUC := trigger.New(cfg.Action, logger)
	fetcherUC := fetcher.New(gitlabClient, logger)
	promptUC := prompt.New(cfg.Action, cfg.Pipeline.PromptPath, logger)
	orchestratorUC := orchestrator.New(orchestrator.Config{
		Action:        cfg.Action,
		PipelineToken: cfg.Pipeline.TriggerToken,
		PipelineRef:   cfg.Pipeline.Ref,
	}, gitlabClient, fetcherUC, promptUC, logger)

	if cfg.Pipeline.TriggerToken == "" {
		logger.Warn(ctx, "PIPELINE_TRIGGER_TOKEN is empty: triggered jobs will fail at hand-off")
	}

	// 5. Dispatcher
	dispatcher := orchestrator.NewDispatcher(orchestratorUC, orchestrator.DispatcherConfig{
		Workers:    cfg.Dispatcher.Workers,
		QueueSize:  cfg.Dispatcher.QueueSize,
		JobTimeout: cfg.Dispatcher.JobTimeout,
		Handoff:    orchestrator.HandoffPipeline,
	}, logger)
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	go func() {
		for res := range dispatcher.Results() {
			if res.Err != nil {
				logger.Errorf(ctx, "job %s failed: %v", res.JobID, res.Err)
				continue
			}
			pipelineURL := ""
			if res.Output.Pipeline != nil {
				pipelineURL = res.Output.Pipeline.WebURL
			}
			logger.Infof(ctx, "job %s done: project=%d %s!%d branch=%s pipeline=%s",
				res.JobID, res.Output.ProjectID, res.Output.ResourceType, res.Output.ResourceID,
				res.Output.Branch, pipelineURL)
		}
	}()

	// 6. Webhook handler
	webhookHandler := webhook.NewHandler(triggerUC, dispatcher, webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		DedupTTL:        cfg.Webhook.DedupTTL,
	}, logger)

	if cfg.Webhook.NgrokAPI != "" {
		go func() {
			publicURL, ngrokErr := detectNgrokURL(ctx, cfg.Webhook.NgrokAPI)
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
				return
			}
			logger.Infof(ctx, "Configure the GitLab project webhook with URL %s/webhook", publicURL)
		}()
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		WebhookHandler:  webhookHandler,
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
