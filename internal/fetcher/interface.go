package fetcher

import (
	"context"

	"assistant-trigger/internal/model"
	"assistant-trigger/pkg/gitlab"
)

// UseCase assembles the repository context of a triggered resource.
type UseCase interface {
	Fetch(ctx context.Context, projectID int, trigger model.TriggerResult) (model.Context, error)
}

// Repository is the read side of the GitLab API the fetcher needs.
type Repository interface {
	GetProject(ctx context.Context, projectID int) (gitlab.Project, error)
	GetIssue(ctx context.Context, projectID, iid int) (gitlab.Issue, error)
	ListIssueNotes(ctx context.Context, projectID, iid int) ([]gitlab.Note, error)
	GetMergeRequest(ctx context.Context, projectID, iid int) (gitlab.MergeRequest, error)
	ListMergeRequestNotes(ctx context.Context, projectID, iid int) ([]gitlab.Note, error)
	ListMergeRequestCommits(ctx context.Context, projectID, iid int) ([]gitlab.Commit, error)
	GetMergeRequestChanges(ctx context.Context, projectID, iid int) ([]gitlab.Diff, error)
	GetFile(ctx context.Context, projectID int, path, ref string) (gitlab.EncodedFile, error)
}
