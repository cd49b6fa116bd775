package orchestrator

import (
	"time"

	"assistant-trigger/internal/model"
	"assistant-trigger/internal/prompt"
	"assistant-trigger/pkg/gitlab"
)

// Config holds the orchestrator settings.
type Config struct {
	Action        model.ActionConfig
	PipelineToken string // trigger token for the pipeline hand-off
	PipelineRef   string // defaults to the project default branch
	JobURL        string // linked from the tracking comment when set
}

// Handoff selects where a prepared run goes.
type Handoff string

const (
	// HandoffPipeline starts a CI pipeline carrying the trigger data.
	HandoffPipeline Handoff = "pipeline"
	// HandoffOutputs writes named outputs for the next CI stage.
	HandoffOutputs Handoff = "outputs"
)

// RunInput is one invocation. CommentID and Branch are set when an earlier
// stage already bootstrapped them.
type RunInput struct {
	Trigger   model.TriggerResult
	CommentID int
	Branch    string
	Handoff   Handoff
	Outputs   OutputWriter // required for HandoffOutputs
}

// RunOutput describes a completed invocation.
type RunOutput struct {
	ProjectID    int
	ResourceType model.ResourceType
	ResourceID   int
	CommentID    int
	Branch       string
	Prompt       prompt.AssembleOutput
	Pipeline     *gitlab.Pipeline
}

// DispatcherConfig configures the background worker pool.
type DispatcherConfig struct {
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
	Handoff    Handoff
}

// Job is one queued invocation.
type Job struct {
	ID         string
	DeliveryID string
	Trigger    model.TriggerResult
}

// JobResult is published once per job.
type JobResult struct {
	JobID  string
	Err    error
	Output RunOutput
}
