package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"assistant-trigger/internal/model"
	"assistant-trigger/pkg/gitlab"
	"assistant-trigger/pkg/outputs"
)

// triggerPipeline starts the CI pipeline that runs the assistant. The
// pipeline receives the trigger data and the bootstrapped comment and branch
// so it does not repeat them.
func (uc *usecase) triggerPipeline(ctx context.Context, c model.Context, t model.TriggerResult, out RunOutput) (gitlab.Pipeline, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return gitlab.Pipeline{}, fmt.Errorf("encode trigger data: %w", err)
	}

	vars := uc.cfg.Action.Variables()
	vars[VarTriggerData] = string(data)
	vars[VarCommentID] = strconv.Itoa(out.CommentID)
	vars[VarBranch] = out.Branch

	ref := uc.cfg.PipelineRef
	if ref == "" {
		ref = c.Project.DefaultBranch
	}

	p, err := uc.repo.TriggerPipeline(ctx, out.ProjectID, gitlab.PipelineTriggerInput{
		Token:     uc.cfg.PipelineToken,
		Ref:       ref,
		Variables: vars,
	})
	if err != nil {
		return gitlab.Pipeline{}, fmt.Errorf("trigger pipeline: %w", err)
	}
	uc.l.Infof(ctx, "Triggered pipeline %d on %s", p.ID, ref)

	if p.WebURL != "" {
		if err := uc.updateNote(ctx, out, uc.trackingBody(p.WebURL)); err != nil {
			uc.l.Warnf(ctx, "Failed to link pipeline on comment %d: %v", out.CommentID, err)
		}
	}
	return p, nil
}

func (uc *usecase) writeOutputs(w OutputWriter, out RunOutput) error {
	w.Set(outputs.ShouldTrigger, "true")
	w.SetInt(outputs.CommentID, out.CommentID)
	w.SetInt(outputs.ProjectID, out.ProjectID)
	w.Set(outputs.ResourceType, string(out.ResourceType))
	w.SetInt(outputs.ResourceID, out.ResourceID)
	w.Set(outputs.BranchName, out.Branch)
	w.Set(outputs.AllowedTools, out.Prompt.AllowedTools)
	w.Set(outputs.DisallowedTools, out.Prompt.DisallowedTools)
	w.Set(outputs.PromptFile, out.Prompt.PromptPath)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}
	return nil
}
