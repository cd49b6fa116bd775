package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// GetIssue fetches an issue by project scoped iid.
func (c *Client) GetIssue(ctx context.Context, projectID, iid int) (Issue, error) {
	var is Issue
	if _, err := c.doJSON(ctx, http.MethodGet, c.endpoint("/projects/%d/issues/%d", projectID, iid), nil, &is); err != nil {
		return Issue{}, fmt.Errorf("gitlab get issue: %w", err)
	}
	return is, nil
}
