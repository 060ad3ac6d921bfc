package core_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/cryptly-dev/cryptly/pkg/coresdk"
	"github.com/stretchr/testify/require"
)

func TestDevicePairingFlow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// The new device is unauthenticated; the approver is not.
	device := env.anonClient()
	alice := env.clientFor(t, "alice")

	reg, err := device.RegisterDevice(ctx, coresdk.RegisterDeviceRequest{
		DeviceID:   "laptop-1",
		DeviceName: "Work Laptop",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", reg.Status)

	ping, err := device.PingDevice(ctx, "laptop-1")
	require.NoError(t, err)
	require.Equal(t, "pending", ping.Status)
	require.Empty(t, ping.Message)

	require.NoError(t, alice.ApproveDevice(ctx, "laptop-1", coresdk.ApproveDeviceRequest{
		Message: "wrapped-session-key",
	}))

	ping, err = device.PingDevice(ctx, "laptop-1")
	require.NoError(t, err)
	require.Equal(t, "approved", ping.Status)
	require.Equal(t, "wrapped-session-key", ping.Message)
}

func TestDeviceApproveRequiresAuth(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	device := env.anonClient()
	_, err := device.RegisterDevice(ctx, coresdk.RegisterDeviceRequest{DeviceID: "laptop-2"})
	require.NoError(t, err)

	err = device.ApproveDevice(ctx, "laptop-2", coresdk.ApproveDeviceRequest{Message: "payload"})
	require.Error(t, err)
	apiErr, ok := err.(*coresdk.APIError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// Still pending.
	ping, err := device.PingDevice(ctx, "laptop-2")
	require.NoError(t, err)
	require.Equal(t, "pending", ping.Status)
}

func TestDeviceDoubleApprove(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	device := env.anonClient()
	alice := env.clientFor(t, "alice")
	bob := env.clientFor(t, "bob")

	_, err := device.RegisterDevice(ctx, coresdk.RegisterDeviceRequest{DeviceID: "phone-1"})
	require.NoError(t, err)

	require.NoError(t, alice.ApproveDevice(ctx, "phone-1", coresdk.ApproveDeviceRequest{Message: "first"}))

	err = bob.ApproveDevice(ctx, "phone-1", coresdk.ApproveDeviceRequest{Message: "second"})
	requireAPIError(t, err, http.StatusConflict, coresdk.ErrorCodeConflict)

	ping, err := device.PingDevice(ctx, "phone-1")
	require.NoError(t, err)
	require.Equal(t, "first", ping.Message)
}

func TestDeviceDuplicateRegistration(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	device := env.anonClient()
	_, err := device.RegisterDevice(ctx, coresdk.RegisterDeviceRequest{DeviceID: "tablet-1"})
	require.NoError(t, err)

	_, err = device.RegisterDevice(ctx, coresdk.RegisterDeviceRequest{DeviceID: "tablet-1"})
	requireAPIError(t, err, http.StatusConflict, coresdk.ErrorCodeConflict)
}

func TestDeviceUnknownSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.anonClient().PingDevice(ctx, "ghost")
	requireAPIError(t, err, http.StatusNotFound, coresdk.ErrorCodeNotFound)
}
