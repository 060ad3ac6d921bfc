package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cryptly-dev/cryptly/internal/core/service"
	"github.com/cryptly-dev/cryptly/pkg/coresdk"
	"github.com/cryptly-dev/cryptly/pkg/httpx"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

type DevicesHandler struct {
	DeviceService *service.DeviceService
}

// HandleRegister godoc
//
//	@Summary		Register Device Endpoint
//	@Description	Open a pending pairing session for a new device. The device polls the ping endpoint
//	@Description	until an authenticated session approves it or the session expires.
//	@Tags			Devices
//	@Accept			json
//	@Produce		json
//	@Param			request	body		coresdk.RegisterDeviceRequest	true	"Device registration"
//	@Success		201		{object}	coresdk.RegisterDeviceResponse	"device_id, status, expires_at"
//	@Failure		400		{object}	coresdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	coresdk.ErrorResponse			"error, error_description"
//	@Router			/v1/devices/register [post].
func (h *DevicesHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req coresdk.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	sess, err := h.DeviceService.Register(ctx, req.DeviceID, req.DeviceName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDeviceRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "device_id is required",
			})
		case errors.Is(err, service.ErrDeviceAlreadyExists):
			httpx.WriteJSON(w, http.StatusConflict, coresdk.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "Device is already registered",
			})
		default:
			log.Error("failed to register device", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to register device",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, coresdk.RegisterDeviceResponse{
		DeviceID:  sess.ID,
		Status:    sess.State.String(),
		ExpiresAt: sess.ExpiresAt.Unix(),
	})
}

// HandlePing godoc
//
//	@Summary		Ping Device Session Endpoint
//	@Description	Poll the pairing session state. Returns "pending" until an approval or expiry lands;
//	@Description	once approved the response carries the approval payload.
//	@Tags			Devices
//	@Produce		json
//	@Param			id	path		string						true	"Device ID"
//	@Success		200	{object}	coresdk.PingDeviceResponse	"status, message"
//	@Failure		404	{object}	coresdk.ErrorResponse		"error, error_description"
//	@Router			/v1/devices/{id}/ping [get].
func (h *DevicesHandler) HandlePing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	deviceID := r.PathValue("id")

	status, err := h.DeviceService.Ping(ctx, deviceID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, coresdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Device session not found",
			})
		default:
			log.Error("failed to ping device session", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to ping device session",
			})
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, coresdk.PingDeviceResponse{
		Status:  status.State.String(),
		Message: status.Message,
	})
}

// HandleApprove godoc
//
//	@Summary		Approve Device Endpoint
//	@Description	Approve a pending pairing session, pushing the payload the device will pick up on its
//	@Description	next ping. Only pending sessions can be approved; expired or already approved sessions
//	@Description	are rejected.
//	@Tags			Devices
//	@Accept			json
//	@Param			id		path	string							true	"Device ID"
//	@Param			request	body	coresdk.ApproveDeviceRequest	true	"Approval payload"
//	@Success		204
//	@Failure		400	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/devices/{id}/approve [post].
func (h *DevicesHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req coresdk.ApproveDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	deviceID := r.PathValue("id")

	err := h.DeviceService.Approve(ctx, userID, deviceID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDeviceRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "message is required",
			})
		case errors.Is(err, service.ErrSessionNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, coresdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Device session not found",
			})
		case errors.Is(err, service.ErrSessionNotPending):
			httpx.WriteJSON(w, http.StatusConflict, coresdk.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "Device session is not pending",
			})
		default:
			log.Error("failed to approve device", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to approve device",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
