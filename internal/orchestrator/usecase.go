package orchestrator

import (
	"context"
	"fmt"

	"assistant-trigger/internal/model"
	"assistant-trigger/internal/prompt"
)

// Run executes one invocation. Once the tracking comment exists, any later
// failure is written back to it before the error is returned.
func (uc *usecase) Run(ctx context.Context, input RunInput) (RunOutput, error) {
	t := input.Trigger
	if !t.ShouldTrigger {
		return RunOutput{}, ErrNotTriggered
	}
	if t.ProjectID == nil || t.ResourceID == nil ||
		(t.ResourceType != model.ResourceTypeIssue && t.ResourceType != model.ResourceTypeMergeRequest) {
		return RunOutput{}, ErrMissingTarget
	}
	switch input.Handoff {
	case HandoffPipeline:
		if uc.cfg.PipelineToken == "" {
			return RunOutput{}, ErrPipelineNotConfigured
		}
	case HandoffOutputs:
		if input.Outputs == nil {
			return RunOutput{}, ErrMissingOutputs
		}
	default:
		return RunOutput{}, fmt.Errorf("%w: %q", ErrUnknownHandoff, input.Handoff)
	}

	out := RunOutput{
		ProjectID:    *t.ProjectID,
		ResourceType: t.ResourceType,
		ResourceID:   *t.ResourceID,
		CommentID:    input.CommentID,
		Branch:       input.Branch,
	}

	if out.CommentID == 0 {
		note, err := uc.createNote(ctx, out, uc.trackingBody(""))
		if err != nil {
			return out, fmt.Errorf("create tracking comment: %w", err)
		}
		out.CommentID = note.ID
		uc.l.Infof(ctx, "Created tracking comment %d on %s %d", note.ID, out.ResourceType, out.ResourceID)
	}

	if err := uc.prepare(ctx, input, &out); err != nil {
		uc.reportFailure(ctx, out, err)
		return out, err
	}
	return out, nil
}

func (uc *usecase) prepare(ctx context.Context, input RunInput, out *RunOutput) error {
	c, err := uc.fetcher.Fetch(ctx, out.ProjectID, input.Trigger)
	if err != nil {
		return fmt.Errorf("fetch context: %w", err)
	}

	if out.Branch == "" {
		branch, err := uc.resolveBranch(ctx, c)
		if err != nil {
			return err
		}
		out.Branch = branch
	}

	// The pipeline assembles again in its own workspace, so the webhook
	// service only renders.
	assembled, err := uc.assembler.Assemble(ctx, c, prompt.AssembleInput{
		CommentID: out.CommentID,
		Branch:    out.Branch,
		SkipWrite: input.Handoff == HandoffPipeline,
	})
	if err != nil {
		return fmt.Errorf("assemble prompt: %w", err)
	}
	out.Prompt = assembled

	switch input.Handoff {
	case HandoffPipeline:
		p, err := uc.triggerPipeline(ctx, c, input.Trigger, *out)
		if err != nil {
			return err
		}
		out.Pipeline = &p
		return nil
	default:
		return uc.writeOutputs(input.Outputs, *out)
	}
}
