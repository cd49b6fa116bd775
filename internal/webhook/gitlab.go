package webhook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"assistant-trigger/internal/model"
)

// GitLab webhook headers.
const (
	HeaderEvent    = "X-Gitlab-Event"
	HeaderToken    = "X-Gitlab-Token"
	HeaderDelivery = "X-Gitlab-Event-UUID"
)

type hookUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type hookLabel struct {
	Title string `json:"title"`
}

type hookIssue struct {
	ID          int         `json:"id"`
	IID         int         `json:"iid"`
	ProjectID   int         `json:"project_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	State       string      `json:"state"`
	Action      string      `json:"action"`
	AuthorID    int         `json:"author_id"`
	URL         string      `json:"url"`
	Labels      []hookLabel `json:"labels"`
}

type hookMergeRequest struct {
	hookIssue
	SourceBranch string `json:"source_branch"`
	TargetBranch string `json:"target_branch"`
}

type hookNote struct {
	ID           int      `json:"id"`
	Note         string   `json:"note"`
	NoteableType string   `json:"noteable_type"`
	System       bool     `json:"system"`
	CreatedAt    hookTime `json:"created_at"`
}

type hookPayload struct {
	ObjectKind string `json:"object_kind"`
	ProjectID  int    `json:"project_id"`
	Project    struct {
		ID int `json:"id"`
	} `json:"project"`
	User hookUser `json:"user"`

	// Push and tag push hooks describe the actor with flat fields.
	UserID       int    `json:"user_id"`
	UserUsername string `json:"user_username"`
	UserName     string `json:"user_name"`
	Ref          string `json:"ref"`
	CheckoutSHA  string `json:"checkout_sha"`

	ObjectAttributes json.RawMessage   `json:"object_attributes"`
	Issue            *hookIssue        `json:"issue"`
	MergeRequest     *hookMergeRequest `json:"merge_request"`
	Labels           []hookLabel       `json:"labels"`
	Assignees        []hookUser        `json:"assignees"`
}

// hookTime accepts both timestamp layouts GitLab uses in hooks. Anything else
// decodes to the zero time.
type hookTime time.Time

var hookTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05 -0700",
}

func (t *hookTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	for _, layout := range hookTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = hookTime(parsed)
			return nil
		}
	}
	*t = hookTime{}
	return nil
}

// ParseGitLabEvent normalizes a GitLab webhook payload by its object_kind.
func ParseGitLabEvent(payload []byte) (model.Event, error) {
	var p hookPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return model.Event{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	projectID := p.Project.ID
	if projectID == 0 {
		projectID = p.ProjectID
	}
	user := toUser(p.User)

	switch model.EventKind(p.ObjectKind) {
	case model.EventKindNote:
		var attrs hookNote
		if err := decodeAttributes(p.ObjectAttributes, &attrs); err != nil {
			return model.Event{}, err
		}
		ev := model.NoteEvent{
			Note: model.Note{
				ID:           attrs.ID,
				Body:         attrs.Note,
				System:       attrs.System,
				Author:       user,
				CreatedAt:    time.Time(attrs.CreatedAt),
				NoteableType: attrs.NoteableType,
			},
		}
		if p.Issue != nil {
			issue := toIssue(*p.Issue, nil, nil)
			ev.Issue = &issue
			ev.Note.NoteableIID = issue.IID
		}
		if p.MergeRequest != nil {
			mr := toMergeRequest(*p.MergeRequest, nil, nil)
			ev.MergeRequest = &mr
			ev.Note.NoteableIID = mr.IID
		}
		return model.NewNoteEvent(projectID, user, ev), nil

	case model.EventKindIssue:
		var attrs hookIssue
		if err := decodeAttributes(p.ObjectAttributes, &attrs); err != nil {
			return model.Event{}, err
		}
		return model.NewIssueEvent(projectID, user, model.IssueEvent{
			Issue:  toIssue(attrs, p.Labels, p.Assignees),
			Action: attrs.Action,
		}), nil

	case model.EventKindMergeRequest:
		var attrs hookMergeRequest
		if err := decodeAttributes(p.ObjectAttributes, &attrs); err != nil {
			return model.Event{}, err
		}
		return model.NewMergeRequestEvent(projectID, user, model.MergeRequestEvent{
			MergeRequest: toMergeRequest(attrs, p.Labels, p.Assignees),
			Action:       attrs.Action,
		}), nil

	case model.EventKindPush:
		return model.NewPushEvent(projectID, pushUser(p), model.PushEvent{Ref: p.Ref, CheckoutSHA: p.CheckoutSHA}), nil

	case model.EventKindTagPush:
		return model.NewTagPushEvent(projectID, pushUser(p), model.TagPushEvent{Ref: p.Ref, CheckoutSHA: p.CheckoutSHA}), nil

	default:
		return model.Event{}, fmt.Errorf("%w: %q", ErrUnsupportedEvent, p.ObjectKind)
	}
}

func decodeAttributes(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing object_attributes", ErrMalformedPayload)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: object_attributes: %v", ErrMalformedPayload, err)
	}
	return nil
}

func toUser(u hookUser) model.User {
	return model.User{ID: u.ID, Username: u.Username, Name: u.Name}
}

func pushUser(p hookPayload) model.User {
	return model.User{ID: p.UserID, Username: p.UserUsername, Name: p.UserName}
}

// toIssue maps hook attributes. Top level labels and assignees, when present,
// reflect the state after the change and win over the attribute copy.
func toIssue(h hookIssue, labels []hookLabel, assignees []hookUser) model.Issue {
	if len(labels) == 0 {
		labels = h.Labels
	}
	return model.Issue{
		ID:          h.ID,
		IID:         h.IID,
		ProjectID:   h.ProjectID,
		Title:       h.Title,
		Description: h.Description,
		State:       h.State,
		Labels:      labelTitles(labels),
		Assignees:   toUsers(assignees),
		Author:      model.User{ID: h.AuthorID},
		WebURL:      h.URL,
	}
}

func toMergeRequest(h hookMergeRequest, labels []hookLabel, assignees []hookUser) model.MergeRequest {
	is := toIssue(h.hookIssue, labels, assignees)
	return model.MergeRequest{
		ID:           is.ID,
		IID:          is.IID,
		ProjectID:    is.ProjectID,
		Title:        is.Title,
		Description:  is.Description,
		State:        is.State,
		SourceBranch: h.SourceBranch,
		TargetBranch: h.TargetBranch,
		Labels:       is.Labels,
		Assignees:    is.Assignees,
		Author:       is.Author,
		WebURL:       is.WebURL,
	}
}

func labelTitles(labels []hookLabel) []string {
	if len(labels) == 0 {
		return nil
	}
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, l.Title)
	}
	return out
}

func toUsers(in []hookUser) []model.User {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.User, len(in))
	for i, u := range in {
		out[i] = toUser(u)
	}
	return out
}
