package fileops

import (
	"context"

	"assistant-trigger/pkg/gitlab"
)

// UseCase writes the assistant's changes back to GitLab.
type UseCase interface {
	// CommitFiles creates or updates files from the local workspace in one commit.
	CommitFiles(ctx context.Context, input CommitInput) (gitlab.CommitResult, error)
	// DeleteFiles removes files in one commit.
	DeleteFiles(ctx context.Context, input DeleteInput) (gitlab.CommitResult, error)
	// UpdateComment replaces the body of the tracking comment.
	UpdateComment(ctx context.Context, input UpdateCommentInput) (gitlab.Note, error)
}

// Repository is the GitLab API subset used for file writes.
type Repository interface {
	GetFile(ctx context.Context, projectID int, path, ref string) (gitlab.EncodedFile, error)
	CreateCommit(ctx context.Context, projectID int, input gitlab.CommitInput) (gitlab.CommitResult, error)
	UpdateIssueNote(ctx context.Context, projectID, iid, noteID int, body string) (gitlab.Note, error)
	UpdateMergeRequestNote(ctx context.Context, projectID, iid, noteID int, body string) (gitlab.Note, error)
}
