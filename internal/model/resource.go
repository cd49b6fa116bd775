package model

import "time"

// User is a GitLab account.
type User struct {
	ID       int    `json:"id,omitempty"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// DisplayName returns name, then username, then "Unknown".
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Username != "" {
		return u.Username
	}
	return "Unknown"
}

// Project is a GitLab project.
type Project struct {
	ID                int
	Name              string
	PathWithNamespace string
	WebURL            string
	DefaultBranch     string
	Description       string
}

// Issue is a GitLab issue. IID is the project scoped number.
type Issue struct {
	ID          int
	IID         int
	ProjectID   int
	Title       string
	Description string
	State       string
	Labels      []string
	Assignees   []User
	Author      User
	WebURL      string
}

// MergeRequest is a GitLab merge request. IID is the project scoped number.
type MergeRequest struct {
	ID           int
	IID          int
	ProjectID    int
	Title        string
	Description  string
	State        string
	SourceBranch string
	TargetBranch string
	Labels       []string
	Assignees    []User
	Author       User
	WebURL       string
}

// StateOpened is the state of an open issue or merge request.
const StateOpened = "opened"

// Note is a discussion comment.
type Note struct {
	ID           int       `json:"id"`
	Body         string    `json:"body"`
	System       bool      `json:"system"`
	Author       User      `json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	NoteableType string    `json:"noteable_type,omitempty"`
	NoteableIID  int       `json:"noteable_iid,omitempty"`
}

// Commit is a merge request commit.
type Commit struct {
	ID         string
	ShortID    string
	Title      string
	Message    string
	AuthorName string
	CreatedAt  time.Time
}

// DiffStatus describes how a file changed in a merge request.
type DiffStatus string

const (
	DiffAdded    DiffStatus = "added"
	DiffModified DiffStatus = "modified"
	DiffDeleted  DiffStatus = "deleted"
	DiffRenamed  DiffStatus = "renamed"
)

// Diff is a single file change in a merge request.
type Diff struct {
	OldPath     string
	NewPath     string
	Diff        string
	NewFile     bool
	RenamedFile bool
	DeletedFile bool
}

// Status reports the change kind. Deletion wins over rename.
func (d Diff) Status() DiffStatus {
	switch {
	case d.DeletedFile:
		return DiffDeleted
	case d.NewFile:
		return DiffAdded
	case d.RenamedFile:
		return DiffRenamed
	default:
		return DiffModified
	}
}

// File is decoded repository file content.
type File struct {
	Path    string
	Content string
}
