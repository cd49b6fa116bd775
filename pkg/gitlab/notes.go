package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

const (
	noteableIssues        = "issues"
	noteableMergeRequests = "merge_requests"
)

type noteBody struct {
	Body string `json:"body"`
}

// ListIssueNotes lists issue notes oldest first.
func (c *Client) ListIssueNotes(ctx context.Context, projectID, iid int) ([]Note, error) {
	notes, err := c.listNotes(ctx, noteableIssues, projectID, iid)
	if err != nil {
		return nil, fmt.Errorf("gitlab list issue notes: %w", err)
	}
	return notes, nil
}

// ListMergeRequestNotes lists merge request notes oldest first.
func (c *Client) ListMergeRequestNotes(ctx context.Context, projectID, iid int) ([]Note, error) {
	notes, err := c.listNotes(ctx, noteableMergeRequests, projectID, iid)
	if err != nil {
		return nil, fmt.Errorf("gitlab list merge request notes: %w", err)
	}
	return notes, nil
}

func (c *Client) listNotes(ctx context.Context, noteable string, projectID, iid int) ([]Note, error) {
	reqURL := c.endpoint("/projects/%d/%s/%d/notes?sort=asc&order_by=created_at", projectID, noteable, iid)

	var notes []Note
	err := getPaged(ctx, c, reqURL, func(page []Note) {
		notes = append(notes, page...)
	})
	return notes, err
}

// CreateIssueNote posts a comment on an issue.
func (c *Client) CreateIssueNote(ctx context.Context, projectID, iid int, body string) (Note, error) {
	n, err := c.writeNote(ctx, http.MethodPost, c.endpoint("/projects/%d/%s/%d/notes", projectID, noteableIssues, iid), body)
	if err != nil {
		return Note{}, fmt.Errorf("gitlab create issue note: %w", err)
	}
	return n, nil
}

// CreateMergeRequestNote posts a comment on a merge request.
func (c *Client) CreateMergeRequestNote(ctx context.Context, projectID, iid int, body string) (Note, error) {
	n, err := c.writeNote(ctx, http.MethodPost, c.endpoint("/projects/%d/%s/%d/notes", projectID, noteableMergeRequests, iid), body)
	if err != nil {
		return Note{}, fmt.Errorf("gitlab create merge request note: %w", err)
	}
	return n, nil
}

// UpdateIssueNote replaces the body of an issue comment.
func (c *Client) UpdateIssueNote(ctx context.Context, projectID, iid, noteID int, body string) (Note, error) {
	n, err := c.writeNote(ctx, http.MethodPut, c.endpoint("/projects/%d/%s/%d/notes/%d", projectID, noteableIssues, iid, noteID), body)
	if err != nil {
		return Note{}, fmt.Errorf("gitlab update issue note: %w", err)
	}
	return n, nil
}

// UpdateMergeRequestNote replaces the body of a merge request comment.
func (c *Client) UpdateMergeRequestNote(ctx context.Context, projectID, iid, noteID int, body string) (Note, error) {
	n, err := c.writeNote(ctx, http.MethodPut, c.endpoint("/projects/%d/%s/%d/notes/%d", projectID, noteableMergeRequests, iid, noteID), body)
	if err != nil {
		return Note{}, fmt.Errorf("gitlab update merge request note: %w", err)
	}
	return n, nil
}

func (c *Client) writeNote(ctx context.Context, method, reqURL, body string) (Note, error) {
	var n Note
	if _, err := c.doJSON(ctx, method, reqURL, noteBody{Body: body}, &n); err != nil {
		return Note{}, err
	}
	return n, nil
}
