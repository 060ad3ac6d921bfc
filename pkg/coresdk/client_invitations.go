package coresdk

import (
	"context"
	"fmt"
	"net/http"
)

// IssueInvitation mints an invitation for a project. The caller's role must
// be at least the role being granted.
func (c *Client) IssueInvitation(ctx context.Context, req IssueInvitationRequest) (*InvitationResponse, error) {
	var out InvitationResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/invitations", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation redeems an invitation as the caller. On success the
// response carries the ephemeral private key and wrapped secrets key; the
// server will never release them again.
func (c *Client) AcceptInvitation(ctx context.Context, invitationID string) (*AcceptInvitationResponse, error) {
	var out AcceptInvitationResponse
	path := fmt.Sprintf("/v1/invitations/%s/accept", invitationID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeInvitation withdraws an unredeemed invitation. Requires Admin access
// on the invitation's project. Revoking an already revoked invitation is a
// no-op.
func (c *Client) RevokeInvitation(ctx context.Context, invitationID string) error {
	path := fmt.Sprintf("/v1/invitations/%s/revoke", invitationID)
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, http.StatusNoContent)
}
