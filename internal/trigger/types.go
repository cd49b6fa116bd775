package trigger

import (
	"fmt"

	"assistant-trigger/internal/model"
)

// DirectInput is a caller supplied target for a manual invocation.
type DirectInput struct {
	ProjectID    int
	ResourceType model.ResourceType
	ResourceID   int
	TriggeredBy  *model.User
	Prompt       string
}

// Validate checks that the input names a concrete resource.
func (in DirectInput) Validate() error {
	if in.ProjectID <= 0 {
		return fmt.Errorf("%w: projectId must be positive", ErrInvalidDirectInput)
	}
	if in.ResourceType != model.ResourceTypeIssue && in.ResourceType != model.ResourceTypeMergeRequest {
		return fmt.Errorf("%w: resourceType must be issue or merge_request", ErrInvalidDirectInput)
	}
	if in.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceId must be positive", ErrInvalidDirectInput)
	}
	return nil
}
