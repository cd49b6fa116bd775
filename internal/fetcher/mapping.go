package fetcher

import (
	"assistant-trigger/internal/model"
	"assistant-trigger/pkg/gitlab"
)

func toUser(u gitlab.User) model.User {
	return model.User{ID: u.ID, Username: u.Username, Name: u.Name}
}

func toUsers(in []gitlab.User) []model.User {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.User, len(in))
	for i, u := range in {
		out[i] = toUser(u)
	}
	return out
}

func toProject(p gitlab.Project) model.Project {
	return model.Project{
		ID:                p.ID,
		Name:              p.Name,
		PathWithNamespace: p.PathWithNamespace,
		WebURL:            p.WebURL,
		DefaultBranch:     p.DefaultBranch,
		Description:       p.Description,
	}
}

func toIssue(is gitlab.Issue) model.Issue {
	return model.Issue{
		ID:          is.ID,
		IID:         is.IID,
		ProjectID:   is.ProjectID,
		Title:       is.Title,
		Description: is.Description,
		State:       is.State,
		Labels:      is.Labels,
		Assignees:   toUsers(is.Assignees),
		Author:      toUser(is.Author),
		WebURL:      is.WebURL,
	}
}

func toMergeRequest(mr gitlab.MergeRequest) model.MergeRequest {
	return model.MergeRequest{
		ID:           mr.ID,
		IID:          mr.IID,
		ProjectID:    mr.ProjectID,
		Title:        mr.Title,
		Description:  mr.Description,
		State:        mr.State,
		SourceBranch: mr.SourceBranch,
		TargetBranch: mr.TargetBranch,
		Labels:       mr.Labels,
		Assignees:    toUsers(mr.Assignees),
		Author:       toUser(mr.Author),
		WebURL:       mr.WebURL,
	}
}

func toNotes(in []gitlab.Note) []model.Note {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Note, len(in))
	for i, n := range in {
		out[i] = model.Note{
			ID:           n.ID,
			Body:         n.Body,
			System:       n.System,
			Author:       toUser(n.Author),
			CreatedAt:    n.CreatedAt,
			NoteableType: n.NoteableType,
			NoteableIID:  n.NoteableIID,
		}
	}
	return out
}

func toCommits(in []gitlab.Commit) []model.Commit {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Commit, len(in))
	for i, c := range in {
		out[i] = model.Commit{
			ID:         c.ID,
			ShortID:    c.ShortID,
			Title:      c.Title,
			Message:    c.Message,
			AuthorName: c.AuthorName,
			CreatedAt:  c.CreatedAt,
		}
	}
	return out
}

func toDiffs(in []gitlab.Diff) []model.Diff {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Diff, len(in))
	for i, d := range in {
		out[i] = model.Diff{
			OldPath:     d.OldPath,
			NewPath:     d.NewPath,
			Diff:        d.Diff,
			NewFile:     d.NewFile,
			RenamedFile: d.RenamedFile,
			DeletedFile: d.DeletedFile,
		}
	}
	return out
}
