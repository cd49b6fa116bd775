package fetcher

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"assistant-trigger/internal/model"
	"assistant-trigger/pkg/gitlab"
)

// Fetch builds the Context for trigger. Project, resource and notes are read
// concurrently; any of them failing fails the fetch. For merge requests the
// commits, changes and changed file contents follow. File read failures are
// logged and the file is left out.
func (uc *usecase) Fetch(ctx context.Context, projectID int, trigger model.TriggerResult) (model.Context, error) {
	if trigger.ResourceID == nil {
		return model.Context{}, ErrMissingResource
	}
	iid := *trigger.ResourceID

	switch trigger.ResourceType {
	case model.ResourceTypeIssue:
		return uc.fetchIssue(ctx, projectID, iid, trigger)
	case model.ResourceTypeMergeRequest:
		return uc.fetchMergeRequest(ctx, projectID, iid, trigger)
	default:
		return model.Context{}, fmt.Errorf("%w: %q", ErrUnknownResource, trigger.ResourceType)
	}
}

func (uc *usecase) fetchIssue(ctx context.Context, projectID, iid int, trigger model.TriggerResult) (model.Context, error) {
	var (
		project gitlab.Project
		issue   gitlab.Issue
		notes   []gitlab.Note
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		project, err = uc.repo.GetProject(gctx, projectID)
		return err
	})
	g.Go(func() (err error) {
		issue, err = uc.repo.GetIssue(gctx, projectID, iid)
		return err
	})
	g.Go(func() (err error) {
		notes, err = uc.repo.ListIssueNotes(gctx, projectID, iid)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Context{}, fmt.Errorf("fetch issue #%d context: %w", iid, err)
	}

	uc.l.Infof(ctx, "Fetched issue #%d context: %d notes", iid, len(notes))
	mapped := toIssue(issue)
	return model.Context{
		Project: toProject(project),
		Issue:   &mapped,
		Notes:   toNotes(notes),
		Trigger: trigger,
	}, nil
}

func (uc *usecase) fetchMergeRequest(ctx context.Context, projectID, iid int, trigger model.TriggerResult) (model.Context, error) {
	var (
		project gitlab.Project
		mr      gitlab.MergeRequest
		notes   []gitlab.Note
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		project, err = uc.repo.GetProject(gctx, projectID)
		return err
	})
	g.Go(func() (err error) {
		mr, err = uc.repo.GetMergeRequest(gctx, projectID, iid)
		return err
	})
	g.Go(func() (err error) {
		notes, err = uc.repo.ListMergeRequestNotes(gctx, projectID, iid)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Context{}, fmt.Errorf("fetch merge request !%d context: %w", iid, err)
	}

	commits, err := uc.repo.ListMergeRequestCommits(ctx, projectID, iid)
	if err != nil {
		return model.Context{}, fmt.Errorf("fetch merge request !%d commits: %w", iid, err)
	}

	changes, err := uc.repo.GetMergeRequestChanges(ctx, projectID, iid)
	if err != nil {
		return model.Context{}, fmt.Errorf("fetch merge request !%d changes: %w", iid, err)
	}
	diffs := toDiffs(changes)

	files := uc.fetchFiles(ctx, projectID, mr.SourceBranch, SelectFiles(diffs))

	uc.l.Infof(ctx, "Fetched merge request !%d context: %d notes, %d commits, %d diffs, %d files",
		iid, len(notes), len(commits), len(diffs), len(files))
	mapped := toMergeRequest(mr)
	return model.Context{
		Project:      toProject(project),
		MergeRequest: &mapped,
		Notes:        toNotes(notes),
		Trigger:      trigger,
		Commits:      toCommits(commits),
		Diffs:        diffs,
		Files:        files,
	}, nil
}

// fetchFiles reads paths at ref in parallel. Each slot is filled
// independently; failed reads leave their slot empty and are dropped, so the
// result keeps the input order.
func (uc *usecase) fetchFiles(ctx context.Context, projectID int, ref string, paths []string) []model.File {
	if len(paths) == 0 {
		return nil
	}

	slots := make([]*model.File, len(paths))

	var g errgroup.Group
	g.SetLimit(fileFetchConcurrency)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			enc, err := uc.repo.GetFile(ctx, projectID, p, ref)
			if err != nil {
				uc.l.Warnf(ctx, "Skipping file %s: %v", p, err)
				return nil
			}
			content, err := decodeContent(enc)
			if err != nil {
				uc.l.Warnf(ctx, "Skipping file %s: %v", p, err)
				return nil
			}
			slots[i] = &model.File{Path: p, Content: content}
			return nil
		})
	}
	_ = g.Wait()

	files := make([]model.File, 0, len(paths))
	for _, f := range slots {
		if f != nil {
			files = append(files, *f)
		}
	}
	return files
}
