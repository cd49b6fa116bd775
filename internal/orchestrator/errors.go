package orchestrator

import "errors"

var (
	ErrNotTriggered          = errors.New("trigger result does not trigger")
	ErrMissingTarget         = errors.New("trigger result has no project or resource")
	ErrUnknownHandoff        = errors.New("unknown handoff")
	ErrMissingOutputs        = errors.New("outputs handoff requires an output writer")
	ErrPipelineNotConfigured = errors.New("pipeline trigger token not configured")
	ErrQueueFull             = errors.New("dispatcher queue full")
	ErrDispatcherClosed      = errors.New("dispatcher closed")
)
