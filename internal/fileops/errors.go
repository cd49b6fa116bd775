package fileops

import "errors"

var (
	ErrMissingProject  = errors.New("project id is required")
	ErrMissingBranch   = errors.New("branch is required")
	ErrNoPaths         = errors.New("at least one path is required")
	ErrInvalidPath     = errors.New("path must be relative and stay inside the workspace")
	ErrInvalidResource = errors.New("resource type must be issue or merge_request with a positive id")
	ErrMissingNote     = errors.New("note id is required")
	ErrEmptyBody       = errors.New("comment body is empty")
)
