package prompt_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"assistant-trigger/internal/model"
	"assistant-trigger/internal/prompt"
)

func issueContext() model.Context {
	return model.Context{
		Project: model.Project{ID: 42, PathWithNamespace: "group/app", WebURL: "https://gitlab.example.com/group/app", DefaultBranch: "main"},
		Issue: &model.Issue{
			IID:         3,
			Title:       "Crash on start",
			Description: "Steps in [the guide](docs/guide.md)",
			State:       model.StateOpened,
			Author:      model.User{Username: "bob"},
		},
		Notes: []model.Note{
			{ID: 1, Body: "I can reproduce", Author: model.User{Username: "carol"}, CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
			{ID: 2, Body: "added label ~bug", System: true},
			{ID: 99, Body: "Working on it..."},
		},
		Trigger: model.TriggerResult{
			ShouldTrigger:  true,
			TriggerType:    model.TriggerTypeComment,
			ResourceType:   model.ResourceTypeIssue,
			ResourceID:     model.IntPtr(3),
			TriggeredBy:    &model.User{Username: "alice", Name: "Alice Doe"},
			TriggerComment: &model.Note{ID: 5, Body: "@claude fix [this](src/main.go)"},
		},
	}
}

func newAssembler(t *testing.T, cfg model.ActionConfig) (prompt.UseCase, string) {
	t.Helper()
	if cfg.TriggerPhrase == "" {
		cfg.TriggerPhrase = "@claude"
	}
	path := filepath.Join(t.TempDir(), "prompts", "prompt.txt")
	return prompt.New(cfg, path, &mockLogger{}), path
}

func TestAssemble_Issue(t *testing.T) {
	uc, path := newAssembler(t, model.ActionConfig{CustomInstructions: "Always write tests."})

	out, err := uc.Assemble(context.Background(), issueContext(), prompt.AssembleInput{CommentID: 99, Branch: "claude/issue-3-20260102-030405"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("prompt file not written: %v", err)
	}
	if string(written) != out.Prompt {
		t.Errorf("file content differs from returned prompt")
	}
	if out.PromptPath != path {
		t.Errorf("PromptPath = %s, want %s", out.PromptPath, path)
	}
	if out.EventType != prompt.EventIssueComment {
		t.Errorf("EventType = %s", out.EventType)
	}
	if out.DisallowedTools != "WebSearch,WebFetch" {
		t.Errorf("DisallowedTools = %s", out.DisallowedTools)
	}

	mustContain := []string{
		"<repository>group/app</repository>",
		"<issue_iid>3</issue_iid>",
		"<comment_id>99</comment_id>",
		"<trigger_username>Alice Doe</trigger_username>",
		"<event_type>ISSUE_COMMENT</event_type>",
		"<is_mr>false</is_mr>",
		"<trigger_comment>\n@claude fix this\n</trigger_comment>",
		"Steps in the guide",
		"[carol at 2026-01-02T03:04:05Z]: I can reproduce",
		"You are already on the correct branch (claude/issue-3-20260102-030405)",
		"merge_request%5Bsource_branch%5D=claude%2Fissue-3-20260102-030405",
		"merge_request%5Btarget_branch%5D=main",
		"CUSTOM INSTRUCTIONS:\nAlways write tests.",
	}
	for _, s := range mustContain {
		if !strings.Contains(out.Prompt, s) {
			t.Errorf("prompt missing %q", s)
		}
	}

	mustNotContain := []string{
		"added label ~bug",
		"Working on it...",
		"<commits>",
		"<changed_files>",
		"<file_contents>",
		"<direct_prompt>",
	}
	for _, s := range mustNotContain {
		if strings.Contains(out.Prompt, s) {
			t.Errorf("prompt should not contain %q", s)
		}
	}
}

func TestAssemble_MergeRequestWithoutBranch(t *testing.T) {
	uc, _ := newAssembler(t, model.ActionConfig{AllowedTools: []string{"WebFetch"}})

	c := model.Context{
		Project: model.Project{PathWithNamespace: "group/app"},
		MergeRequest: &model.MergeRequest{
			IID: 12, Title: "Add cache", SourceBranch: "feature/cache", TargetBranch: "main",
		},
		Commits: []model.Commit{{ID: "0123456789abcdef", Title: "add cache", AuthorName: "Bob"}},
		Diffs: []model.Diff{
			{NewPath: "cache.go", NewFile: true, Diff: "@@ -0,0 +1 @@\n+package cache\n"},
			{OldPath: "old.go", NewPath: "new.go", RenamedFile: true},
		},
		Files:   []model.File{{Path: "cache.go", Content: "package cache\n"}},
		Trigger: model.TriggerResult{TriggerType: model.TriggerTypeLabel},
	}

	out, err := uc.Assemble(context.Background(), c, prompt.AssembleInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.EventType != prompt.EventMRLabeled {
		t.Errorf("EventType = %s", out.EventType)
	}
	if out.DisallowedTools != "WebSearch" {
		t.Errorf("DisallowedTools = %s", out.DisallowedTools)
	}
	mustContain := []string{
		"<mr_iid>12</mr_iid>",
		"<is_mr>true</is_mr>",
		"<trigger_username>Unknown</trigger_username>",
		"- 01234567: add cache (Bob)",
		"- cache.go (added)",
		"- old.go -> new.go (renamed)",
		"### cache.go\n```diff\n@@ -0,0 +1 @@\n+package cache\n```",
		"### cache.go\n```\npackage cache\n```",
		"No working branch has been prepared for this request.",
		"<mr_or_issue_body>\nNo description provided\n</mr_or_issue_body>",
	}
	for _, s := range mustContain {
		if !strings.Contains(out.Prompt, s) {
			t.Errorf("prompt missing %q", s)
		}
	}
	if strings.Contains(out.Prompt, "<comments>") {
		t.Errorf("empty comments section should be omitted")
	}
	if strings.Contains(out.Prompt, "CUSTOM INSTRUCTIONS") {
		t.Errorf("custom instructions should be omitted when unset")
	}
}

func TestAssemble_DirectPrompt(t *testing.T) {
	uc, _ := newAssembler(t, model.ActionConfig{})
	c := issueContext()
	c.Trigger = model.TriggerResult{
		ShouldTrigger: true,
		TriggerType:   model.TriggerTypeDirect,
		TriggeredBy:   &model.User{Username: "ops"},
		DirectPrompt:  "Summarize this issue",
	}

	out, err := uc.Assemble(context.Background(), c, prompt.AssembleInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.EventType != prompt.EventDirectTrigger {
		t.Errorf("EventType = %s", out.EventType)
	}
	if !strings.Contains(out.Prompt, "<direct_prompt>\nSummarize this issue\n</direct_prompt>") {
		t.Errorf("direct prompt missing")
	}
	if !strings.Contains(out.Prompt, "<trigger_username>ops</trigger_username>") {
		t.Errorf("username fallback not applied")
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	uc, _ := newAssembler(t, model.ActionConfig{})
	a, err := uc.Assemble(context.Background(), issueContext(), prompt.AssembleInput{CommentID: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := uc.Assemble(context.Background(), issueContext(), prompt.AssembleInput{CommentID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if a.Prompt != b.Prompt {
		t.Errorf("same input produced different prompts")
	}
}

func TestAssemble_SkipWrite(t *testing.T) {
	uc, path := newAssembler(t, model.ActionConfig{})

	out, err := uc.Assemble(context.Background(), issueContext(), prompt.AssembleInput{CommentID: 1, SkipWrite: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Prompt == "" || out.EventType != prompt.EventIssueComment {
		t.Errorf("prompt not rendered: %+v", out)
	}
	if out.PromptPath != "" {
		t.Errorf("PromptPath = %q, want empty", out.PromptPath)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("scratch file should not exist, stat err = %v", err)
	}
}

func TestAssemble_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	uc := prompt.New(model.ActionConfig{}, filepath.Join(blocker, "prompt.txt"), &mockLogger{})
	_, err := uc.Assemble(context.Background(), issueContext(), prompt.AssembleInput{})
	if !errors.Is(err, prompt.ErrWritePrompt) {
		t.Fatalf("expected ErrWritePrompt, got %v", err)
	}
}
