package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/pflag"

	"assistant-trigger/config"
	"assistant-trigger/internal/fetcher"
	"assistant-trigger/internal/orchestrator"
	"assistant-trigger/internal/prompt"
	"assistant-trigger/internal/trigger"
	"assistant-trigger/pkg/gitlab"
	"assistant-trigger/pkg/log"
	"assistant-trigger/pkg/outputs"
)

// main is the entry point of the CI job that prepares an assistant run.
// It decodes the trigger data handed over by the webhook service, fetches
// the context, writes the prompt file and publishes the step outputs as a
// dotenv file for the next stage.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		triggerData string
		outputsPath string
		commentID   int
		branch      string
	)

	flagSet := pflag.NewFlagSet("assistant-pipeline", pflag.ContinueOnError)
	flagSet.StringVar(&triggerData, "trigger-data", os.Getenv(orchestrator.VarTriggerData), "JSON trigger data (default: $TRIGGER_DATA)")
	flagSet.StringVar(&outputsPath, "outputs", "", "dotenv file receiving step outputs (default: pipeline.outputs_path)")
	flagSet.IntVar(&commentID, "comment-id", envInt(orchestrator.VarCommentID), "tracking comment created by the webhook service")
	flagSet.StringVar(&branch, "branch", os.Getenv(orchestrator.VarBranch), "working branch created by the webhook service")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if outputsPath == "" {
		outputsPath = cfg.Pipeline.OutputsPath
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := outputs.New(outputsPath)

	triggerUC := trigger.New(cfg.Action, logger)
	t := triggerUC.ValidatePipelineTrigger(ctx, triggerData)
	if !t.ShouldTrigger {
		logger.Info(ctx, "No trigger in pipeline data, skipping")
		out.Set(outputs.ShouldTrigger, "false")
		return out.Flush()
	}

	gitlabClient := gitlab.NewClient(gitlab.Config{
		BaseURL: cfg.GitLab.URL,
		Token:   cfg.GitLab.Token,
		Timeout: cfg.GitLab.Timeout,
	})
	orchestratorUC := orchestrator.New(orchestrator.Config{
		Action: cfg.Action,
		JobURL: cfg.Pipeline.JobURL,
	}, gitlabClient, fetcher.New(gitlabClient, logger), prompt.New(cfg.Action, cfg.Pipeline.PromptPath, logger), logger)

	res, err := orchestratorUC.Run(ctx, orchestrator.RunInput{
		Trigger:   t,
		CommentID: commentID,
		Branch:    branch,
		Handoff:   orchestrator.HandoffOutputs,
		Outputs:   out,
	})
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Prepared %s %d on branch %s, prompt at %s",
		res.ResourceType, res.ResourceID, res.Branch, res.Prompt.PromptPath)
	return nil
}

// envInt reads an integer variable, treating absent or malformed values as 0.
func envInt(key string) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return n
}
