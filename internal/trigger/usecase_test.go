package trigger_test

import (
	"context"
	"errors"
	"testing"

	"assistant-trigger/internal/model"
	"assistant-trigger/internal/trigger"
)

func newUseCase(cfg model.ActionConfig) trigger.UseCase {
	if cfg.TriggerPhrase == "" {
		cfg.TriggerPhrase = "@claude"
	}
	return trigger.New(cfg, &mockLogger{})
}

var human = model.User{ID: 7, Username: "alice", Name: "Alice"}

func noteOnMR(body string, system bool) model.Event {
	return model.NewNoteEvent(42, human, model.NoteEvent{
		Note:         model.Note{ID: 900, Body: body, System: system, Author: human},
		MergeRequest: &model.MergeRequest{ID: 5001, IID: 12, State: model.StateOpened},
	})
}

func TestEvaluate_Note(t *testing.T) {
	uc := newUseCase(model.ActionConfig{})
	ctx := context.Background()

	t.Run("system note never triggers", func(t *testing.T) {
		res := uc.Evaluate(ctx, noteOnMR("@claude please review", true))
		if res.ShouldTrigger {
			t.Fatalf("expected system note not to trigger, got %+v", res)
		}
	})

	bodies := []string{
		"@claude please review",
		"@CLAUDE please review",
		"hey Claude, have a look",
		"ping @Claude",
	}
	for _, body := range bodies {
		t.Run("matches "+body, func(t *testing.T) {
			res := uc.Evaluate(ctx, noteOnMR(body, false))
			if !res.ShouldTrigger {
				t.Fatalf("expected trigger for %q", body)
			}
			if res.TriggerType != model.TriggerTypeComment {
				t.Errorf("expected comment trigger, got %s", res.TriggerType)
			}
			if res.ResourceType != model.ResourceTypeMergeRequest {
				t.Errorf("expected merge_request, got %s", res.ResourceType)
			}
			if res.ResourceID == nil || *res.ResourceID != 12 {
				t.Errorf("expected resource iid 12, got %v", res.ResourceID)
			}
			if res.ProjectID == nil || *res.ProjectID != 42 {
				t.Errorf("expected project 42, got %v", res.ProjectID)
			}
			if res.TriggerComment == nil || res.TriggerComment.ID != 900 {
				t.Errorf("expected trigger comment 900, got %+v", res.TriggerComment)
			}
			if res.TriggeredBy == nil || res.TriggeredBy.Username != "alice" {
				t.Errorf("expected triggeredBy alice, got %+v", res.TriggeredBy)
			}
		})
	}

	t.Run("no phrase", func(t *testing.T) {
		res := uc.Evaluate(ctx, noteOnMR("looks good to me", false))
		if res.ShouldTrigger {
			t.Fatalf("expected no trigger")
		}
		if res.TriggerType != model.TriggerTypeNone || res.ResourceType != model.ResourceTypeNone {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("note on issue resolves issue iid", func(t *testing.T) {
		ev := model.NewNoteEvent(42, human, model.NoteEvent{
			Note:  model.Note{ID: 1, Body: "@claude fix it"},
			Issue: &model.Issue{ID: 777, IID: 3},
		})
		res := uc.Evaluate(ctx, ev)
		if !res.ShouldTrigger || res.ResourceType != model.ResourceTypeIssue {
			t.Fatalf("expected issue trigger, got %+v", res)
		}
		if *res.ResourceID != 3 {
			t.Errorf("expected iid 3, got %d", *res.ResourceID)
		}
	})

	t.Run("note without parent resource", func(t *testing.T) {
		ev := model.NewNoteEvent(42, human, model.NoteEvent{Note: model.Note{ID: 1, Body: "@claude"}})
		if res := uc.Evaluate(ctx, ev); res.ShouldTrigger {
			t.Fatalf("expected no trigger for note on a commit")
		}
	})

	t.Run("substring over-match is accepted", func(t *testing.T) {
		bot := newUseCase(model.ActionConfig{TriggerPhrase: "@bot"})
		res := bot.Evaluate(ctx, noteOnMR("I dropped the @bottle", false))
		if !res.ShouldTrigger {
			t.Fatalf("expected phrase embedded in a longer word to match")
		}
	})
}

func TestEvaluate_BotUserNeverTriggers(t *testing.T) {
	uc := newUseCase(model.ActionConfig{AssigneeTrigger: "claude", LabelTrigger: "ai"})
	bot := model.User{Username: "renovate-bot"}

	events := []model.Event{
		model.NewNoteEvent(1, bot, model.NoteEvent{
			Note:  model.Note{Body: "@claude do it"},
			Issue: &model.Issue{IID: 1},
		}),
		model.NewIssueEvent(1, bot, model.IssueEvent{Issue: model.Issue{
			IID: 1, State: model.StateOpened, Title: "@claude",
			Labels: []string{"ai"}, Assignees: []model.User{{Username: "claude"}},
		}}),
	}
	for _, ev := range events {
		if res := uc.Evaluate(context.Background(), ev); res.ShouldTrigger {
			t.Errorf("bot %s event triggered: %+v", ev.Kind, res)
		}
	}
}

func TestEvaluate_IssuePriority(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(model.ActionConfig{AssigneeTrigger: "@claude-assistant", LabelTrigger: "ai-fix"})

	base := model.Issue{
		ID:          5555,
		IID:         9,
		State:       model.StateOpened,
		Title:       "@claude please fix",
		Labels:      []string{"bug", "ai-fix"},
		Assignees:   []model.User{{Username: "claude-assistant"}},
		Description: "",
	}

	tests := []struct {
		name   string
		mutate func(i *model.Issue)
		want   model.TriggerType
		should bool
	}{
		{"assignee beats label and phrase", func(i *model.Issue) {}, model.TriggerTypeAssignee, true},
		{"label beats phrase", func(i *model.Issue) { i.Assignees = nil }, model.TriggerTypeLabel, true},
		{"phrase in title", func(i *model.Issue) { i.Assignees = nil; i.Labels = nil }, model.TriggerTypeComment, true},
		{"phrase in description", func(i *model.Issue) {
			i.Assignees = nil
			i.Labels = nil
			i.Title = "Crash on start"
			i.Description = "cc @Claude"
		}, model.TriggerTypeComment, true},
		{"phrase ignored when closed", func(i *model.Issue) {
			i.Assignees = nil
			i.Labels = nil
			i.State = "closed"
		}, model.TriggerTypeNone, false},
		{"label still counts when closed", func(i *model.Issue) {
			i.Assignees = nil
			i.State = "closed"
		}, model.TriggerTypeLabel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := base
			issue.Labels = append([]string(nil), base.Labels...)
			issue.Assignees = append([]model.User(nil), base.Assignees...)
			tt.mutate(&issue)

			res := uc.Evaluate(ctx, model.NewIssueEvent(42, human, model.IssueEvent{Issue: issue}))
			if res.ShouldTrigger != tt.should {
				t.Fatalf("ShouldTrigger = %v, want %v", res.ShouldTrigger, tt.should)
			}
			if res.TriggerType != tt.want {
				t.Errorf("TriggerType = %s, want %s", res.TriggerType, tt.want)
			}
			if tt.should {
				if res.ResourceType != model.ResourceTypeIssue {
					t.Errorf("ResourceType = %s", res.ResourceType)
				}
				if *res.ResourceID != 9 {
					t.Errorf("ResourceID = %d, want iid 9", *res.ResourceID)
				}
			}
		})
	}
}

func TestEvaluate_OpenedIssueWithPhraseInTitle(t *testing.T) {
	uc := newUseCase(model.ActionConfig{TriggerPhrase: "@claude", AssigneeTrigger: "someone", LabelTrigger: "nope"})
	ev := model.NewIssueEvent(42, human, model.IssueEvent{Issue: model.Issue{
		ID: 10001, IID: 17, State: model.StateOpened, Title: "@claude please fix the bug",
	}})

	res := uc.Evaluate(context.Background(), ev)
	if !res.ShouldTrigger {
		t.Fatal("expected trigger")
	}
	if res.TriggerType != model.TriggerTypeComment {
		t.Errorf("TriggerType = %s", res.TriggerType)
	}
	if res.ResourceType != model.ResourceTypeIssue {
		t.Errorf("ResourceType = %s", res.ResourceType)
	}
	if res.ResourceID == nil || *res.ResourceID != 17 {
		t.Errorf("ResourceID = %v, want 17", res.ResourceID)
	}
}

func TestEvaluate_MergeRequest(t *testing.T) {
	uc := newUseCase(model.ActionConfig{LabelTrigger: "ai-review"})
	ev := model.NewMergeRequestEvent(42, human, model.MergeRequestEvent{MergeRequest: model.MergeRequest{
		ID: 3000, IID: 4, State: "merged", Labels: []string{"ai-review"},
	}})

	res := uc.Evaluate(context.Background(), ev)
	if !res.ShouldTrigger || res.TriggerType != model.TriggerTypeLabel {
		t.Fatalf("expected label trigger, got %+v", res)
	}
	if res.ResourceType != model.ResourceTypeMergeRequest || *res.ResourceID != 4 {
		t.Errorf("unexpected resource: %s %v", res.ResourceType, res.ResourceID)
	}
}

func TestEvaluate_OtherKinds(t *testing.T) {
	uc := newUseCase(model.ActionConfig{})
	events := []model.Event{
		model.NewPushEvent(1, human, model.PushEvent{Ref: "refs/heads/main"}),
		model.NewTagPushEvent(1, human, model.TagPushEvent{Ref: "refs/tags/v1"}),
		{Kind: "pipeline", User: human},
	}
	for _, ev := range events {
		if res := uc.Evaluate(context.Background(), ev); res.ShouldTrigger {
			t.Errorf("%s should not trigger", ev.Kind)
		}
	}
}

func TestValidateDirectTrigger(t *testing.T) {
	uc := newUseCase(model.ActionConfig{})
	res := uc.ValidateDirectTrigger(context.Background(), trigger.DirectInput{
		ProjectID:    99,
		ResourceType: model.ResourceTypeMergeRequest,
		ResourceID:   5,
	})

	if !res.ShouldTrigger || res.TriggerType != model.TriggerTypeDirect {
		t.Fatalf("unexpected result: %+v", res)
	}
	if *res.ProjectID != 99 || *res.ResourceID != 5 || res.ResourceType != model.ResourceTypeMergeRequest {
		t.Errorf("caller target not kept verbatim: %+v", res)
	}
}

func TestValidatePipelineTrigger(t *testing.T) {
	uc := newUseCase(model.ActionConfig{})
	ctx := context.Background()

	t.Run("valid data", func(t *testing.T) {
		raw := `{"shouldTrigger":true,"triggerType":"comment","resourceType":"issue","resourceId":3,"projectId":42,
			"triggeredBy":{"username":"alice"},"triggerComment":{"id":8,"body":"@claude hi","system":false}}`
		res := uc.ValidatePipelineTrigger(ctx, raw)
		if !res.ShouldTrigger || res.TriggerType != model.TriggerTypeComment {
			t.Fatalf("unexpected result: %+v", res)
		}
		if *res.ResourceID != 3 || *res.ProjectID != 42 {
			t.Errorf("unexpected ids: %v %v", res.ResourceID, res.ProjectID)
		}
		if res.TriggerComment == nil || res.TriggerComment.Body != "@claude hi" {
			t.Errorf("unexpected comment: %+v", res.TriggerComment)
		}
	})

	for _, raw := range []string{"", "not json", "{\"shouldTrigger\":", "[1,2]"} {
		t.Run("malformed "+raw, func(t *testing.T) {
			res := uc.ValidatePipelineTrigger(ctx, raw)
			if res.ShouldTrigger || res.TriggerType != model.TriggerTypeNone || res.ResourceType != model.ResourceTypeNone ||
				res.ResourceID != nil || res.ProjectID != nil || res.TriggeredBy != nil || res.TriggerComment != nil {
				t.Errorf("expected all-null result, got %+v", res)
			}
		})
	}
}

func TestDirectInputValidate(t *testing.T) {
	tcs := []struct {
		name    string
		input   trigger.DirectInput
		wantErr bool
	}{
		{"valid issue", trigger.DirectInput{ProjectID: 1, ResourceType: model.ResourceTypeIssue, ResourceID: 2}, false},
		{"valid merge request", trigger.DirectInput{ProjectID: 1, ResourceType: model.ResourceTypeMergeRequest, ResourceID: 2}, false},
		{"missing project", trigger.DirectInput{ResourceType: model.ResourceTypeIssue, ResourceID: 2}, true},
		{"none resource", trigger.DirectInput{ProjectID: 1, ResourceType: model.ResourceTypeNone, ResourceID: 2}, true},
		{"unknown resource", trigger.DirectInput{ProjectID: 1, ResourceType: "epic", ResourceID: 2}, true},
		{"zero id", trigger.DirectInput{ProjectID: 1, ResourceType: model.ResourceTypeIssue}, true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			if tc.wantErr {
				if !errors.Is(err, trigger.ErrInvalidDirectInput) {
					t.Errorf("expected ErrInvalidDirectInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDirectTrigger_CarriesPrompt(t *testing.T) {
	uc := newUseCase(model.ActionConfig{})
	res := uc.ValidateDirectTrigger(context.Background(), trigger.DirectInput{
		ProjectID: 1, ResourceType: model.ResourceTypeIssue, ResourceID: 2, Prompt: "Summarize",
	})
	if res.DirectPrompt != "Summarize" {
		t.Errorf("DirectPrompt = %q", res.DirectPrompt)
	}
}
