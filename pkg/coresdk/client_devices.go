package coresdk

import (
	"context"
	"fmt"
	"net/http"
)

// RegisterDevice opens a pending pairing session for a new device. This is
// an unauthenticated call made by the device itself.
func (c *Client) RegisterDevice(ctx context.Context, req RegisterDeviceRequest) (*RegisterDeviceResponse, error) {
	var out RegisterDeviceResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/devices/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// PingDevice polls the pairing session state. The device calls this
// repeatedly until the status leaves "pending".
func (c *Client) PingDevice(ctx context.Context, deviceID string) (*PingDeviceResponse, error) {
	var out PingDeviceResponse
	path := fmt.Sprintf("/v1/devices/%s/ping", deviceID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveDevice approves a pending pairing session, pushing the payload the
// device will pick up on its next ping. Requires authentication.
func (c *Client) ApproveDevice(ctx context.Context, deviceID string, req ApproveDeviceRequest) error {
	path := fmt.Sprintf("/v1/devices/%s/approve", deviceID)
	return c.doJSON(ctx, http.MethodPost, path, req, nil, http.StatusNoContent)
}
