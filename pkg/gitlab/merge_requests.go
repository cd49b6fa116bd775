package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// GetMergeRequest fetches a merge request by project scoped iid.
func (c *Client) GetMergeRequest(ctx context.Context, projectID, iid int) (MergeRequest, error) {
	var mr MergeRequest
	if _, err := c.doJSON(ctx, http.MethodGet, c.endpoint("/projects/%d/merge_requests/%d", projectID, iid), nil, &mr); err != nil {
		return MergeRequest{}, fmt.Errorf("gitlab get merge request: %w", err)
	}
	return mr, nil
}

// ListMergeRequestCommits lists all commits of a merge request.
func (c *Client) ListMergeRequestCommits(ctx context.Context, projectID, iid int) ([]Commit, error) {
	var commits []Commit
	err := getPaged(ctx, c, c.endpoint("/projects/%d/merge_requests/%d/commits", projectID, iid), func(page []Commit) {
		commits = append(commits, page...)
	})
	if err != nil {
		return nil, fmt.Errorf("gitlab list merge request commits: %w", err)
	}
	return commits, nil
}

// GetMergeRequestChanges returns the per-file diffs of a merge request in
// GitLab's order.
func (c *Client) GetMergeRequestChanges(ctx context.Context, projectID, iid int) ([]Diff, error) {
	var ch apiChanges
	if _, err := c.doJSON(ctx, http.MethodGet, c.endpoint("/projects/%d/merge_requests/%d/changes", projectID, iid), nil, &ch); err != nil {
		return nil, fmt.Errorf("gitlab get merge request changes: %w", err)
	}
	return ch.Changes, nil
}
