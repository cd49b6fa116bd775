package fileops

import "assistant-trigger/internal/model"

// CommitInput lists workspace-relative paths to commit. Each file is read
// from Root and written to the same path in the repository.
type CommitInput struct {
	ProjectID int
	Branch    string
	Message   string
	Root      string
	Paths     []string
}

type DeleteInput struct {
	ProjectID int
	Branch    string
	Message   string
	Paths     []string
}

type UpdateCommentInput struct {
	ProjectID    int
	ResourceType model.ResourceType
	ResourceID   int
	NoteID       int
	Body         string
}
