package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// GetProject fetches a project by numeric id.
func (c *Client) GetProject(ctx context.Context, projectID int) (Project, error) {
	var p Project
	if _, err := c.doJSON(ctx, http.MethodGet, c.endpoint("/projects/%d", projectID), nil, &p); err != nil {
		return Project{}, fmt.Errorf("gitlab get project: %w", err)
	}
	return p, nil
}
