package orchestrator

import "time"

// CI variables set on a triggered pipeline besides the flattened ActionConfig.
const (
	VarTriggerData = "TRIGGER_DATA"
	VarCommentID   = "ASSISTANT_COMMENT_ID"
	VarBranch      = "ASSISTANT_BRANCH"
)

const branchTimeLayout = "20060102-150405"

const (
	trackingCommentBody = "⏳ Working on it..."
	pipelineLinkFormat  = "\n\n[View pipeline](%s)"
	jobLinkFormat       = "\n\n[View job run](%s)"
	failureCommentBody  = "❌ The assistant run failed.\n\n```\n%s\n```"
)

const (
	defaultWorkers    = 4
	defaultQueueSize  = 100
	defaultJobTimeout = 10 * time.Minute
)
