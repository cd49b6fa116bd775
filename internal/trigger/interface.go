package trigger

import (
	"context"

	"assistant-trigger/internal/model"
)

// UseCase classifies inbound events into trigger results.
type UseCase interface {
	// Evaluate applies the bot filter and classifies a webhook event.
	Evaluate(ctx context.Context, event model.Event) model.TriggerResult

	// ValidateDirectTrigger builds the result of a manual invocation. It always triggers.
	ValidateDirectTrigger(ctx context.Context, input DirectInput) model.TriggerResult

	// ValidatePipelineTrigger decodes the trigger data blob handed to a CI job.
	// Malformed data yields model.NoTrigger() and never an error.
	ValidatePipelineTrigger(ctx context.Context, raw string) model.TriggerResult
}
