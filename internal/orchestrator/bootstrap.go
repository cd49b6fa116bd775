package orchestrator

import (
	"context"
	"fmt"
	"time"

	"assistant-trigger/internal/model"
	"assistant-trigger/pkg/gitlab"
)

// BranchName is the working branch created for an issue.
func BranchName(prefix string, iid int, now time.Time) string {
	return fmt.Sprintf("%sissue-%d-%s", prefix, iid, now.UTC().Format(branchTimeLayout))
}

// resolveBranch returns the source branch of a merge request, or creates a
// fresh branch for an issue from the base branch.
func (uc *usecase) resolveBranch(ctx context.Context, c model.Context) (string, error) {
	if c.MergeRequest != nil {
		return c.MergeRequest.SourceBranch, nil
	}

	base := uc.cfg.Action.BaseBranch
	if base == "" {
		base = c.Project.DefaultBranch
	}
	name := BranchName(uc.cfg.Action.BranchPrefix, c.ResourceIID(), uc.now())

	if err := uc.repo.CreateBranch(ctx, c.Project.ID, name, base); err != nil {
		return "", fmt.Errorf("create branch: %w", err)
	}
	uc.l.Infof(ctx, "Created branch %s from %s", name, base)
	return name, nil
}

func (uc *usecase) trackingBody(pipelineURL string) string {
	body := trackingCommentBody
	switch {
	case pipelineURL != "":
		body += fmt.Sprintf(pipelineLinkFormat, pipelineURL)
	case uc.cfg.JobURL != "":
		body += fmt.Sprintf(jobLinkFormat, uc.cfg.JobURL)
	}
	return body
}

func (uc *usecase) createNote(ctx context.Context, out RunOutput, body string) (gitlab.Note, error) {
	if out.ResourceType == model.ResourceTypeMergeRequest {
		return uc.repo.CreateMergeRequestNote(ctx, out.ProjectID, out.ResourceID, body)
	}
	return uc.repo.CreateIssueNote(ctx, out.ProjectID, out.ResourceID, body)
}

func (uc *usecase) updateNote(ctx context.Context, out RunOutput, body string) error {
	var err error
	if out.ResourceType == model.ResourceTypeMergeRequest {
		_, err = uc.repo.UpdateMergeRequestNote(ctx, out.ProjectID, out.ResourceID, out.CommentID, body)
	} else {
		_, err = uc.repo.UpdateIssueNote(ctx, out.ProjectID, out.ResourceID, out.CommentID, body)
	}
	return err
}

// reportFailure replaces the tracking comment with the error. Failing to do
// so is only logged.
func (uc *usecase) reportFailure(ctx context.Context, out RunOutput, cause error) {
	body := fmt.Sprintf(failureCommentBody, cause.Error())
	if uc.cfg.JobURL != "" {
		body += fmt.Sprintf(jobLinkFormat, uc.cfg.JobURL)
	}
	if err := uc.updateNote(ctx, out, body); err != nil {
		uc.l.Errorf(ctx, "Failed to report error on comment %d: %v", out.CommentID, err)
	}
}
