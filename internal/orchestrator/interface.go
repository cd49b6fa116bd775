package orchestrator

import (
	"context"

	"assistant-trigger/pkg/gitlab"
)

// UseCase runs one triggered invocation end to end.
type UseCase interface {
	// Run bootstraps the tracking comment and working branch, fetches the
	// context, assembles the prompt and hands the result off.
	Run(ctx context.Context, input RunInput) (RunOutput, error)
}

// Repository is the write side of the GitLab API the orchestrator needs.
type Repository interface {
	CreateIssueNote(ctx context.Context, projectID, iid int, body string) (gitlab.Note, error)
	CreateMergeRequestNote(ctx context.Context, projectID, iid int, body string) (gitlab.Note, error)
	UpdateIssueNote(ctx context.Context, projectID, iid, noteID int, body string) (gitlab.Note, error)
	UpdateMergeRequestNote(ctx context.Context, projectID, iid, noteID int, body string) (gitlab.Note, error)
	CreateBranch(ctx context.Context, projectID int, branch, ref string) error
	TriggerPipeline(ctx context.Context, projectID int, input gitlab.PipelineTriggerInput) (gitlab.Pipeline, error)
}

// OutputWriter receives the named outputs of a pipeline run.
type OutputWriter interface {
	Set(key, value string)
	SetInt(key string, value int)
	Flush() error
}
