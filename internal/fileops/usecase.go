package fileops

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"assistant-trigger/internal/model"
	"assistant-trigger/pkg/gitlab"
)

func (uc *usecase) CommitFiles(ctx context.Context, input CommitInput) (gitlab.CommitResult, error) {
	paths, err := validateTarget(input.ProjectID, input.Branch, input.Paths)
	if err != nil {
		return gitlab.CommitResult{}, err
	}

	actions := make([]gitlab.CommitAction, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(filepath.Join(input.Root, filepath.FromSlash(p)))
		if err != nil {
			return gitlab.CommitResult{}, fmt.Errorf("read %s: %w", p, err)
		}
		actions[i] = gitlab.CommitAction{
			FilePath: p,
			Content:  base64.StdEncoding.EncodeToString(data),
			Encoding: "base64",
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i := range actions {
		i := i
		g.Go(func() error {
			_, err := uc.repo.GetFile(gctx, input.ProjectID, actions[i].FilePath, input.Branch)
			switch {
			case err == nil:
				actions[i].Action = gitlab.ActionUpdate
			case gitlab.IsNotFound(err):
				actions[i].Action = gitlab.ActionCreate
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return gitlab.CommitResult{}, fmt.Errorf("check existing files: %w", err)
	}

	res, err := uc.commit(ctx, input.ProjectID, input.Branch, input.Message, actions)
	if err != nil {
		return gitlab.CommitResult{}, err
	}
	uc.l.Infof(ctx, "Committed %d file(s) to %s as %s", len(actions), input.Branch, res.ShortID)
	return res, nil
}

func (uc *usecase) DeleteFiles(ctx context.Context, input DeleteInput) (gitlab.CommitResult, error) {
	paths, err := validateTarget(input.ProjectID, input.Branch, input.Paths)
	if err != nil {
		return gitlab.CommitResult{}, err
	}

	actions := make([]gitlab.CommitAction, len(paths))
	for i, p := range paths {
		actions[i] = gitlab.CommitAction{Action: gitlab.ActionDelete, FilePath: p}
	}

	res, err := uc.commit(ctx, input.ProjectID, input.Branch, input.Message, actions)
	if err != nil {
		return gitlab.CommitResult{}, err
	}
	uc.l.Infof(ctx, "Deleted %d file(s) on %s as %s", len(actions), input.Branch, res.ShortID)
	return res, nil
}

func (uc *usecase) UpdateComment(ctx context.Context, input UpdateCommentInput) (gitlab.Note, error) {
	if input.ProjectID <= 0 {
		return gitlab.Note{}, ErrMissingProject
	}
	if input.ResourceID <= 0 {
		return gitlab.Note{}, ErrInvalidResource
	}
	if input.NoteID <= 0 {
		return gitlab.Note{}, ErrMissingNote
	}
	if strings.TrimSpace(input.Body) == "" {
		return gitlab.Note{}, ErrEmptyBody
	}

	var (
		note gitlab.Note
		err  error
	)
	switch input.ResourceType {
	case model.ResourceTypeIssue:
		note, err = uc.repo.UpdateIssueNote(ctx, input.ProjectID, input.ResourceID, input.NoteID, input.Body)
	case model.ResourceTypeMergeRequest:
		note, err = uc.repo.UpdateMergeRequestNote(ctx, input.ProjectID, input.ResourceID, input.NoteID, input.Body)
	default:
		return gitlab.Note{}, ErrInvalidResource
	}
	if err != nil {
		return gitlab.Note{}, fmt.Errorf("update comment %d: %w", input.NoteID, err)
	}
	return note, nil
}

func (uc *usecase) commit(ctx context.Context, projectID int, branch, message string, actions []gitlab.CommitAction) (gitlab.CommitResult, error) {
	if strings.TrimSpace(message) == "" {
		message = defaultCommitMessage
	}
	return uc.repo.CreateCommit(ctx, projectID, gitlab.CommitInput{
		Branch:        branch,
		CommitMessage: message,
		Actions:       actions,
	})
}

// validateTarget checks the commit target and returns the cleaned,
// de-duplicated repository paths in input order.
func validateTarget(projectID int, branch string, paths []string) ([]string, error) {
	if projectID <= 0 {
		return nil, ErrMissingProject
	}
	if strings.TrimSpace(branch) == "" {
		return nil, ErrMissingBranch
	}
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		clean, err := cleanPath(p)
		if err != nil {
			return nil, err
		}
		if seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, clean)
	}
	return out, nil
}

func cleanPath(p string) (string, error) {
	p = filepath.ToSlash(strings.TrimSpace(p))
	if p == "" || strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	clean := filepath.ToSlash(filepath.Clean(p))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return clean, nil
}
