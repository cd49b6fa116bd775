package trigger

import (
	"context"
	"encoding/json"
	"strings"

	"assistant-trigger/internal/model"
)

// Evaluate classifies event. Bot actors never trigger.
func (uc *usecase) Evaluate(ctx context.Context, event model.Event) model.TriggerResult {
	if IsBot(event.User) {
		uc.l.Infof(ctx, "Ignoring %s event from bot user %q", event.Kind, event.User.Username)
		return model.NoTrigger()
	}

	switch event.Kind {
	case model.EventKindNote:
		return uc.evaluateNote(ctx, event)
	case model.EventKindIssue:
		return uc.evaluateIssue(ctx, event)
	case model.EventKindMergeRequest:
		return uc.evaluateMergeRequest(ctx, event)
	case model.EventKindPush, model.EventKindTagPush:
		return model.NoTrigger()
	default:
		uc.l.Debugf(ctx, "Unsupported event kind: %s", event.Kind)
		return model.NoTrigger()
	}
}

func (uc *usecase) evaluateNote(ctx context.Context, event model.Event) model.TriggerResult {
	result := model.NoTrigger()
	ne := event.Note
	if ne == nil {
		return result
	}

	if ne.Note.System {
		uc.l.Debugf(ctx, "Skipping system note %d", ne.Note.ID)
		return result
	}
	if !containsPhrase(ne.Note.Body, uc.cfg.TriggerPhrase) {
		return result
	}

	switch {
	case ne.MergeRequest != nil:
		result.ResourceType = model.ResourceTypeMergeRequest
		result.ResourceID = model.IntPtr(ne.MergeRequest.IID)
	case ne.Issue != nil:
		result.ResourceType = model.ResourceTypeIssue
		result.ResourceID = model.IntPtr(ne.Issue.IID)
	default:
		uc.l.Infof(ctx, "Note %d matched the trigger phrase but is not attached to an issue or merge request", ne.Note.ID)
		return result
	}

	note := ne.Note
	result.ShouldTrigger = true
	result.TriggerType = model.TriggerTypeComment
	result.TriggerComment = &note
	uc.attachActor(&result, event)
	return result
}

func (uc *usecase) evaluateIssue(ctx context.Context, event model.Event) model.TriggerResult {
	if event.Issue == nil {
		return model.NoTrigger()
	}
	issue := event.Issue.Issue
	result := uc.matchResource(resourceFields{
		state:       issue.State,
		title:       issue.Title,
		description: issue.Description,
		labels:      issue.Labels,
		assignees:   issue.Assignees,
	})
	if !result.ShouldTrigger {
		return result
	}

	result.ResourceType = model.ResourceTypeIssue
	result.ResourceID = model.IntPtr(issue.IID)
	uc.attachActor(&result, event)
	uc.l.Infof(ctx, "Issue #%d triggered by %s", issue.IID, result.TriggerType)
	return result
}

func (uc *usecase) evaluateMergeRequest(ctx context.Context, event model.Event) model.TriggerResult {
	if event.MergeRequest == nil {
		return model.NoTrigger()
	}
	mr := event.MergeRequest.MergeRequest
	result := uc.matchResource(resourceFields{
		state:       mr.State,
		title:       mr.Title,
		description: mr.Description,
		labels:      mr.Labels,
		assignees:   mr.Assignees,
	})
	if !result.ShouldTrigger {
		return result
	}

	result.ResourceType = model.ResourceTypeMergeRequest
	result.ResourceID = model.IntPtr(mr.IID)
	uc.attachActor(&result, event)
	uc.l.Infof(ctx, "Merge request !%d triggered by %s", mr.IID, result.TriggerType)
	return result
}

type resourceFields struct {
	state       string
	title       string
	description string
	labels      []string
	assignees   []model.User
}

// matchResource checks assignee, then label, then phrase. The first match wins.
func (uc *usecase) matchResource(f resourceFields) model.TriggerResult {
	result := model.NoTrigger()

	if want := strings.TrimPrefix(uc.cfg.AssigneeTrigger, "@"); want != "" {
		for _, a := range f.assignees {
			if a.Username == want {
				result.ShouldTrigger = true
				result.TriggerType = model.TriggerTypeAssignee
				return result
			}
		}
	}

	if want := uc.cfg.LabelTrigger; want != "" {
		for _, label := range f.labels {
			if label == want {
				result.ShouldTrigger = true
				result.TriggerType = model.TriggerTypeLabel
				return result
			}
		}
	}

	if f.state == model.StateOpened &&
		(containsPhrase(f.title, uc.cfg.TriggerPhrase) || containsPhrase(f.description, uc.cfg.TriggerPhrase)) {
		result.ShouldTrigger = true
		result.TriggerType = model.TriggerTypeComment
	}
	return result
}

func (uc *usecase) attachActor(result *model.TriggerResult, event model.Event) {
	user := event.User
	result.TriggeredBy = &user
	if event.ProjectID != 0 {
		result.ProjectID = model.IntPtr(event.ProjectID)
	}
}

// ValidateDirectTrigger takes the caller's target verbatim.
func (uc *usecase) ValidateDirectTrigger(ctx context.Context, input DirectInput) model.TriggerResult {
	uc.l.Infof(ctx, "Direct trigger for %s %d in project %d", input.ResourceType, input.ResourceID, input.ProjectID)
	return model.TriggerResult{
		ShouldTrigger: true,
		TriggerType:   model.TriggerTypeDirect,
		ResourceType:  input.ResourceType,
		ResourceID:    model.IntPtr(input.ResourceID),
		ProjectID:     model.IntPtr(input.ProjectID),
		TriggeredBy:   input.TriggeredBy,
		DirectPrompt:  input.Prompt,
	}
}

// ValidatePipelineTrigger decodes raw. A decode failure is logged and yields
// the same non-triggering result as Evaluate.
func (uc *usecase) ValidatePipelineTrigger(ctx context.Context, raw string) model.TriggerResult {
	var result model.TriggerResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		uc.l.Warnf(ctx, "Malformed pipeline trigger data: %v", err)
		return model.NoTrigger()
	}
	return result
}
