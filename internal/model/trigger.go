package model

// TriggerType says what caused the assistant to act.
type TriggerType string

const (
	TriggerTypeComment  TriggerType = "comment"
	TriggerTypeAssignee TriggerType = "assignee"
	TriggerTypeLabel    TriggerType = "label"
	TriggerTypeDirect   TriggerType = "direct"
	TriggerTypeNone     TriggerType = "none"
)

// ResourceType is the kind of resource the assistant acts on.
type ResourceType string

const (
	ResourceTypeIssue        ResourceType = "issue"
	ResourceTypeMergeRequest ResourceType = "merge_request"
	ResourceTypeNone         ResourceType = "none"
)

// TriggerResult is the classification outcome for one event.
// ResourceID is always the resource iid, never its global id.
type TriggerResult struct {
	ShouldTrigger  bool         `json:"shouldTrigger"`
	TriggerType    TriggerType  `json:"triggerType"`
	ResourceType   ResourceType `json:"resourceType"`
	ResourceID     *int         `json:"resourceId"`
	ProjectID      *int         `json:"projectId"`
	TriggeredBy    *User        `json:"triggeredBy"`
	TriggerComment *Note        `json:"triggerComment"`

	// DirectPrompt is the caller supplied request of a manual invocation.
	DirectPrompt string `json:"prompt,omitempty"`
}

// NoTrigger is the non-triggering result with every optional field unset.
func NoTrigger() TriggerResult {
	return TriggerResult{
		TriggerType:  TriggerTypeNone,
		ResourceType: ResourceTypeNone,
	}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
