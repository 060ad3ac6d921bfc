package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/internal/core/service"
	"github.com/cryptly-dev/cryptly/pkg/coresdk"
	"github.com/cryptly-dev/cryptly/pkg/httpx"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

type InvitationIssueHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Issue Invitation Endpoint
//	@Description	Mint an invitation carrying ephemeral key material generated by the inviter's client.
//	@Description	The caller must hold at least the role being granted; a Write member cannot mint an Admin invitation.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		coresdk.IssueInvitationRequest	true	"Invitation request"
//	@Success		201		{object}	coresdk.InvitationResponse		"id, project_id, role, expires_at"
//	@Failure		400		{object}	coresdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	coresdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req coresdk.IssueInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	if req.ProjectID == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "project_id is required",
		})
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "role must be one of: read, write, admin",
		})
		return
	}

	userID := httpx.UserIDFromContext(ctx)

	inv, err := h.InvitationService.Issue(
		ctx,
		userID,
		req.ProjectID,
		role,
		req.TempPublicKey,
		req.TempPrivateKey,
		req.WrappedSecretsKey,
	)
	if err != nil {
		switch {
		case service.IsAccessDenied(err):
			writeAccessDenied(w)
		case errors.Is(err, service.ErrInvalidInvitationRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "temp_public_key and wrapped_secrets_key are required",
			})
		default:
			log.Error("failed to issue invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to issue invitation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, coresdk.InvitationResponse{
		ID:        inv.ID,
		ProjectID: inv.ProjectID,
		Role:      inv.Role.String(),
		ExpiresAt: inv.ExpiresAt.Unix(),
	})
}
