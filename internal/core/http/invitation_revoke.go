package http

import (
	"errors"
	"net/http"

	"github.com/cryptly-dev/cryptly/internal/core/service"
	"github.com/cryptly-dev/cryptly/pkg/coresdk"
	"github.com/cryptly-dev/cryptly/pkg/httpx"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

type InvitationRevokeHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Revoke Invitation Endpoint
//	@Description	Withdraw an unredeemed invitation. Requires Admin access on the invitation's project.
//	@Description	Revoking an already revoked invitation succeeds as a no-op; revoking an accepted or
//	@Description	expired invitation is rejected.
//	@Tags			Invitations
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204
//	@Failure		403	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/revoke [post].
func (h *InvitationRevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	invitationID := r.PathValue("id")

	err := h.InvitationService.Revoke(ctx, userID, invitationID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, coresdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Invitation not found",
			})
		case service.IsAccessDenied(err):
			writeAccessDenied(w)
		case errors.Is(err, service.ErrInvitationNotRedeemable):
			httpx.WriteJSON(w, http.StatusConflict, coresdk.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "Invitation cannot be revoked in its current state",
			})
		default:
			log.Error("failed to revoke invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to revoke invitation",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
