package prompt

import (
	"fmt"
	"strings"

	"assistant-trigger/internal/model"
)

// formatContext renders the project and resource header.
func formatContext(c model.Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n", c.Project.PathWithNamespace)
	if c.Project.WebURL != "" {
		fmt.Fprintf(&b, "Project URL: %s\n", c.Project.WebURL)
	}

	switch {
	case c.MergeRequest != nil:
		mr := c.MergeRequest
		fmt.Fprintf(&b, "Merge Request Title: %s\n", mr.Title)
		fmt.Fprintf(&b, "Merge Request Author: %s\n", mr.Author.DisplayName())
		fmt.Fprintf(&b, "Merge Request State: %s\n", mr.State)
		fmt.Fprintf(&b, "Source Branch: %s -> Target Branch: %s\n", mr.SourceBranch, mr.TargetBranch)
		if len(mr.Labels) > 0 {
			fmt.Fprintf(&b, "Labels: %s\n", strings.Join(mr.Labels, ", "))
		}
		fmt.Fprintf(&b, "Commits: %d\n", len(c.Commits))
		fmt.Fprintf(&b, "Changed Files: %d files", len(c.Diffs))
	case c.Issue != nil:
		is := c.Issue
		fmt.Fprintf(&b, "Issue Title: %s\n", is.Title)
		fmt.Fprintf(&b, "Issue Author: %s\n", is.Author.DisplayName())
		fmt.Fprintf(&b, "Issue State: %s", is.State)
		if len(is.Labels) > 0 {
			fmt.Fprintf(&b, "\nLabels: %s", strings.Join(is.Labels, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatBody returns the sanitized description, or a placeholder.
func formatBody(c model.Context) string {
	var desc string
	switch {
	case c.MergeRequest != nil:
		desc = c.MergeRequest.Description
	case c.Issue != nil:
		desc = c.Issue.Description
	}
	if strings.TrimSpace(desc) == "" {
		return "No description provided"
	}
	return SanitizeMarkdown(desc)
}

// formatNotes renders user comments oldest first. System notes and the
// tracking comment are left out.
func formatNotes(notes []model.Note, skipID int) string {
	var parts []string
	for _, n := range notes {
		if n.System || (skipID != 0 && n.ID == skipID) {
			continue
		}
		parts = append(parts, fmt.Sprintf("[%s at %s]: %s",
			n.Author.DisplayName(), n.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"), SanitizeMarkdown(n.Body)))
	}
	return strings.Join(parts, "\n\n")
}

func formatCommits(commits []model.Commit) string {
	lines := make([]string, 0, len(commits))
	for _, cm := range commits {
		id := cm.ShortID
		if id == "" && len(cm.ID) >= 8 {
			id = cm.ID[:8]
		}
		lines = append(lines, fmt.Sprintf("- %s: %s (%s)", id, cm.Title, cm.AuthorName))
	}
	return strings.Join(lines, "\n")
}

func formatChangedFiles(diffs []model.Diff) string {
	lines := make([]string, 0, len(diffs))
	for _, d := range diffs {
		if d.Status() == model.DiffRenamed && d.OldPath != d.NewPath {
			lines = append(lines, fmt.Sprintf("- %s -> %s (%s)", d.OldPath, d.NewPath, d.Status()))
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s (%s)", d.NewPath, d.Status()))
	}
	return strings.Join(lines, "\n")
}

func formatDiffs(diffs []model.Diff) string {
	var parts []string
	for _, d := range diffs {
		if strings.TrimSpace(d.Diff) == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("### %s\n```diff\n%s\n```", d.NewPath, strings.TrimRight(d.Diff, "\n")))
	}
	return strings.Join(parts, "\n\n")
}

func formatFiles(files []model.File) string {
	parts := make([]string, 0, len(files))
	for _, f := range files {
		parts = append(parts, fmt.Sprintf("### %s\n```\n%s\n```", f.Path, strings.TrimRight(f.Content, "\n")))
	}
	return strings.Join(parts, "\n\n")
}

// section wraps body in a tag, or returns "" when body is empty.
func section(tag, body string) string {
	if body == "" {
		return ""
	}
	return fmt.Sprintf("<%s>\n%s\n</%s>\n\n", tag, body, tag)
}
