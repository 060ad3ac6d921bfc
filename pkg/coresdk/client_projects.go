package coresdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateProject creates a project owned by the caller.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	var out ProjectResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/projects", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProject fetches a project the caller is a member of.
func (c *Client) GetProject(ctx context.Context, projectID string) (*ProjectResponse, error) {
	var out ProjectResponse
	path := fmt.Sprintf("/v1/projects/%s", projectID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSecrets replaces the project's encrypted secrets payload.
// Requires Write access.
func (c *Client) UpdateSecrets(ctx context.Context, projectID string, req UpdateSecretsRequest) error {
	path := fmt.Sprintf("/v1/projects/%s/secrets", projectID)
	return c.doJSON(ctx, http.MethodPut, path, req, nil, http.StatusNoContent)
}

// ListMembers returns the project's membership map. Requires Read access.
func (c *Client) ListMembers(ctx context.Context, projectID string) (*MembersResponse, error) {
	var out MembersResponse
	path := fmt.Sprintf("/v1/projects/%s/members", projectID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetMemberRole changes an existing member's role. Requires Admin access.
func (c *Client) SetMemberRole(ctx context.Context, projectID, userID string, req SetMemberRoleRequest) error {
	path := fmt.Sprintf("/v1/projects/%s/members/%s", projectID, userID)
	return c.doJSON(ctx, http.MethodPut, path, req, nil, http.StatusNoContent)
}

// RemoveMember removes a member from the project. Requires Admin access.
func (c *Client) RemoveMember(ctx context.Context, projectID, userID string) error {
	path := fmt.Sprintf("/v1/projects/%s/members/%s", projectID, userID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}
