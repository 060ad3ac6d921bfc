package http

import (
	"errors"
	"net/http"

	"github.com/cryptly-dev/cryptly/internal/core/service"
	"github.com/cryptly-dev/cryptly/pkg/coresdk"
	"github.com/cryptly-dev/cryptly/pkg/httpx"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

type InvitationAcceptHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invitation Endpoint
//	@Description	Redeem an invitation as the authenticated caller. On success the caller becomes a project
//	@Description	member and receives the ephemeral private key and wrapped secrets key exactly once; the
//	@Description	server purges the private key in the same transaction and will never release it again.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string								true	"Invitation ID"
//	@Success		200	{object}	coresdk.AcceptInvitationResponse	"project_id, role, temp keys, wrapped_secrets_key"
//	@Failure		404	{object}	coresdk.ErrorResponse				"error, error_description"
//	@Failure		409	{object}	coresdk.ErrorResponse				"error, error_description"
//	@Failure		410	{object}	coresdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/accept [post].
func (h *InvitationAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	invitationID := r.PathValue("id")

	granted, err := h.InvitationService.Accept(ctx, invitationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, coresdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Invitation not found",
			})
		case errors.Is(err, service.ErrInvitationExpired):
			httpx.WriteJSON(w, http.StatusGone, coresdk.ErrorResponse{
				Error:            "gone",
				ErrorDescription: "Invitation has expired",
			})
		case errors.Is(err, service.ErrInvitationNotRedeemable):
			httpx.WriteJSON(w, http.StatusConflict, coresdk.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "Invitation is no longer redeemable",
			})
		default:
			log.Error("failed to accept invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to accept invitation",
			})
		}
		return
	}

	// The private key leaves the server here and only here.
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, coresdk.AcceptInvitationResponse{
		ProjectID:         granted.ProjectID,
		Role:              granted.Role.String(),
		TempPublicKey:     granted.TempPublicKey,
		TempPrivateKey:    granted.TempPrivateKey,
		WrappedSecretsKey: granted.WrappedSecretsKey,
	})
}
