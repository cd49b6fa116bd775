package model

// Context is everything the prompt assembler needs about one invocation.
// Exactly one of Issue and MergeRequest is set when Trigger.ResourceType is
// not ResourceTypeNone.
type Context struct {
	Project      Project
	Issue        *Issue
	MergeRequest *MergeRequest
	Notes        []Note
	Trigger      TriggerResult
	Commits      []Commit
	Diffs        []Diff
	Files        []File
}

// IsMergeRequest reports whether the context describes a merge request.
func (c Context) IsMergeRequest() bool {
	return c.MergeRequest != nil
}

// ResourceIID returns the iid of the issue or merge request, or 0.
func (c Context) ResourceIID() int {
	switch {
	case c.MergeRequest != nil:
		return c.MergeRequest.IID
	case c.Issue != nil:
		return c.Issue.IID
	}
	return 0
}
