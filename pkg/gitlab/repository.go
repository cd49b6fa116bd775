package gitlab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetFile fetches a file at ref. Content is returned in its wire encoding.
func (c *Client) GetFile(ctx context.Context, projectID int, path, ref string) (EncodedFile, error) {
	reqURL := c.endpoint("/projects/%d/repository/files/%s?ref=%s", projectID, url.PathEscape(path), url.QueryEscape(ref))

	var f apiFile
	if _, err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &f); err != nil {
		return EncodedFile{}, fmt.Errorf("gitlab get file %s: %w", path, err)
	}
	return EncodedFile{Path: f.FilePath, Encoding: f.Encoding, Content: f.Content}, nil
}

// CreateBranch creates branch from ref.
func (c *Client) CreateBranch(ctx context.Context, projectID int, branch, ref string) error {
	reqURL := c.endpoint("/projects/%d/repository/branches?branch=%s&ref=%s", projectID, url.QueryEscape(branch), url.QueryEscape(ref))

	var b apiBranch
	if _, err := c.doJSON(ctx, http.MethodPost, reqURL, nil, &b); err != nil {
		return fmt.Errorf("gitlab create branch %s: %w", branch, err)
	}
	return nil
}

// CreateCommit applies all actions in a single commit.
func (c *Client) CreateCommit(ctx context.Context, projectID int, input CommitInput) (CommitResult, error) {
	if len(input.Actions) == 0 {
		return CommitResult{}, fmt.Errorf("gitlab create commit: no actions")
	}

	var res CommitResult
	if _, err := c.doJSON(ctx, http.MethodPost, c.endpoint("/projects/%d/repository/commits", projectID), input, &res); err != nil {
		return CommitResult{}, fmt.Errorf("gitlab create commit: %w", err)
	}
	return res, nil
}
