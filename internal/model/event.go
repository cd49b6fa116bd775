package model

import "time"

// EventKind is the GitLab object_kind of a webhook payload.
type EventKind string

const (
	EventKindNote         EventKind = "note"
	EventKindIssue        EventKind = "issue"
	EventKindMergeRequest EventKind = "merge_request"
	EventKindPush         EventKind = "push"
	EventKindTagPush      EventKind = "tag_push"
)

// Event is a normalized webhook event. Exactly one of the kind-specific
// payloads is set and it always matches Kind.
type Event struct {
	Kind       EventKind
	ProjectID  int
	User       User
	ReceivedAt time.Time

	Note         *NoteEvent
	Issue        *IssueEvent
	MergeRequest *MergeRequestEvent
	Push         *PushEvent
	TagPush      *TagPushEvent
}

// NoteEvent is a comment on an issue or merge request. The parent resource
// is attached as reported by the hook payload.
type NoteEvent struct {
	Note         Note
	Issue        *Issue
	MergeRequest *MergeRequest
}

// IssueEvent carries the issue attributes at the time of the hook.
type IssueEvent struct {
	Issue  Issue
	Action string
}

// MergeRequestEvent carries the merge request attributes at the time of the hook.
type MergeRequestEvent struct {
	MergeRequest MergeRequest
	Action       string
}

// PushEvent is a branch push.
type PushEvent struct {
	Ref         string
	CheckoutSHA string
}

// TagPushEvent is a tag push.
type TagPushEvent struct {
	Ref         string
	CheckoutSHA string
}

// NewNoteEvent builds a note Event.
func NewNoteEvent(projectID int, user User, payload NoteEvent) Event {
	return Event{Kind: EventKindNote, ProjectID: projectID, User: user, ReceivedAt: time.Now(), Note: &payload}
}

// NewIssueEvent builds an issue Event.
func NewIssueEvent(projectID int, user User, payload IssueEvent) Event {
	return Event{Kind: EventKindIssue, ProjectID: projectID, User: user, ReceivedAt: time.Now(), Issue: &payload}
}

// NewMergeRequestEvent builds a merge request Event.
func NewMergeRequestEvent(projectID int, user User, payload MergeRequestEvent) Event {
	return Event{Kind: EventKindMergeRequest, ProjectID: projectID, User: user, ReceivedAt: time.Now(), MergeRequest: &payload}
}

// NewPushEvent builds a push Event.
func NewPushEvent(projectID int, user User, payload PushEvent) Event {
	return Event{Kind: EventKindPush, ProjectID: projectID, User: user, ReceivedAt: time.Now(), Push: &payload}
}

// NewTagPushEvent builds a tag push Event.
func NewTagPushEvent(projectID int, user User, payload TagPushEvent) Event {
	return Event{Kind: EventKindTagPush, ProjectID: projectID, User: user, ReceivedAt: time.Now(), TagPush: &payload}
}
