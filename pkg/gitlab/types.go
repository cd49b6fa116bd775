package gitlab

import "time"

// User is a GitLab account as embedded in API responses.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type Project struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	PathWithNamespace string `json:"path_with_namespace"`
	WebURL            string `json:"web_url"`
	DefaultBranch     string `json:"default_branch"`
	Description       string `json:"description"`
}

type Issue struct {
	ID          int      `json:"id"`
	IID         int      `json:"iid"`
	ProjectID   int      `json:"project_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	State       string   `json:"state"`
	Labels      []string `json:"labels"`
	Assignees   []User   `json:"assignees"`
	Author      User     `json:"author"`
	WebURL      string   `json:"web_url"`
}

type MergeRequest struct {
	ID           int      `json:"id"`
	IID          int      `json:"iid"`
	ProjectID    int      `json:"project_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	State        string   `json:"state"`
	SourceBranch string   `json:"source_branch"`
	TargetBranch string   `json:"target_branch"`
	Labels       []string `json:"labels"`
	Assignees    []User   `json:"assignees"`
	Author       User     `json:"author"`
	WebURL       string   `json:"web_url"`
}

// Note is an issue or merge request comment.
type Note struct {
	ID           int       `json:"id"`
	Body         string    `json:"body"`
	System       bool      `json:"system"`
	Author       User      `json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	NoteableType string    `json:"noteable_type"`
	NoteableIID  int       `json:"noteable_iid"`
}

type Commit struct {
	ID         string    `json:"id"`
	ShortID    string    `json:"short_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// Diff is one file of a merge request change set.
type Diff struct {
	OldPath     string `json:"old_path"`
	NewPath     string `json:"new_path"`
	Diff        string `json:"diff"`
	NewFile     bool   `json:"new_file"`
	RenamedFile bool   `json:"renamed_file"`
	DeletedFile bool   `json:"deleted_file"`
}

type apiChanges struct {
	Changes []Diff `json:"changes"`
}

type apiFile struct {
	FilePath string `json:"file_path"`
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
}

type apiBranch struct {
	Name string `json:"name"`
}

type apiPipeline struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Ref    string `json:"ref"`
	WebURL string `json:"web_url"`
}

// EncodedFile is repository file content as returned by the files API.
type EncodedFile struct {
	Path     string
	Encoding string // "base64" or "text"
	Content  string
}

// CommitAction is one file operation inside a multi-file commit.
type CommitAction struct {
	Action   string `json:"action"` // create, update, delete, move
	FilePath string `json:"file_path"`
	Content  string `json:"content,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// CommitInput is the body of an atomic multi-file commit.
type CommitInput struct {
	Branch        string         `json:"branch"`
	CommitMessage string         `json:"commit_message"`
	StartBranch   string         `json:"start_branch,omitempty"`
	Actions       []CommitAction `json:"actions"`
}

// CommitResult is the created commit.
type CommitResult struct {
	ID      string `json:"id"`
	ShortID string `json:"short_id"`
	WebURL  string `json:"web_url"`
}

// PipelineTriggerInput is the form body of a pipeline trigger call.
type PipelineTriggerInput struct {
	Token     string
	Ref       string
	Variables map[string]string
}

// Pipeline is a triggered pipeline.
type Pipeline struct {
	ID     int
	Status string
	Ref    string
	WebURL string
}
