package prompt

// AssembleInput carries the per-invocation values that are not part of the Context.
type AssembleInput struct {
	CommentID int    // tracking comment id, 0 when none
	Branch    string // resolved working branch, empty when none
	// SkipWrite renders without touching the scratch file. Used when the
	// prompt is rebuilt by a later stage.
	SkipWrite bool
}

// AssembleOutput is the instruction payload for the downstream execution step.
type AssembleOutput struct {
	Prompt          string
	PromptPath      string
	EventType       string
	TriggerContext  string
	AllowedTools    string
	DisallowedTools string
}
