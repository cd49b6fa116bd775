package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/pflag"

	"assistant-trigger/config"
	"assistant-trigger/internal/fileops"
	"assistant-trigger/internal/model"
	"assistant-trigger/internal/orchestrator"
	"assistant-trigger/pkg/gitlab"
	"assistant-trigger/pkg/log"
	"assistant-trigger/pkg/outputs"
)

const usage = `Usage: assistant-fileops <command> [flags] [paths...]

Commands:
  commit          create or update the given files in one commit
  delete          delete the given files in one commit
  update-comment  replace the tracking comment body (--body, or stdin when "-")
`

// main is the file-write helper the assistant's tools call from inside the
// CI job. Values default to the outputs written by the prepare step.
func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}
	command, args := args[0], args[1:]

	var (
		projectID    int
		branch       string
		message      string
		root         string
		resourceType string
		resourceID   int
		noteID       int
		body         string
	)

	flagSet := pflag.NewFlagSet("assistant-fileops "+command, pflag.ContinueOnError)
	flagSet.IntVar(&projectID, "project", envInt(outputs.ProjectID, "CI_PROJECT_ID"), "GitLab project id")
	flagSet.StringVar(&branch, "branch", envString(outputs.BranchName, orchestrator.VarBranch), "target branch")
	flagSet.StringVarP(&message, "message", "m", "", "commit message")
	flagSet.StringVar(&root, "root", ".", "workspace directory the paths are relative to")
	flagSet.StringVar(&resourceType, "resource-type", envString(outputs.ResourceType), "issue or merge_request")
	flagSet.IntVar(&resourceID, "resource-id", envInt(outputs.ResourceID), "issue or merge request iid")
	flagSet.IntVar(&noteID, "note-id", envInt(outputs.CommentID, orchestrator.VarCommentID), "tracking comment id")
	flagSet.StringVar(&body, "body", "", `comment body, "-" reads stdin`)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uc := fileops.New(gitlab.NewClient(gitlab.Config{
		BaseURL: cfg.GitLab.URL,
		Token:   cfg.GitLab.Token,
		Timeout: cfg.GitLab.Timeout,
	}), logger)

	switch command {
	case "commit":
		res, err := uc.CommitFiles(ctx, fileops.CommitInput{
			ProjectID: projectID,
			Branch:    branch,
			Message:   message,
			Root:      root,
			Paths:     flagSet.Args(),
		})
		if err != nil {
			return err
		}
		fmt.Println(res.ID)
		return nil

	case "delete":
		res, err := uc.DeleteFiles(ctx, fileops.DeleteInput{
			ProjectID: projectID,
			Branch:    branch,
			Message:   message,
			Paths:     flagSet.Args(),
		})
		if err != nil {
			return err
		}
		fmt.Println(res.ID)
		return nil

	case "update-comment":
		if body == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			body = string(data)
		}
		_, err := uc.UpdateComment(ctx, fileops.UpdateCommentInput{
			ProjectID:    projectID,
			ResourceType: model.ResourceType(resourceType),
			ResourceID:   resourceID,
			NoteID:       noteID,
			Body:         body,
		})
		return err

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// envString returns the first non-empty variable among keys.
func envString(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func envInt(keys ...string) int {
	n, err := strconv.Atoi(envString(keys...))
	if err != nil {
		return 0
	}
	return n
}
