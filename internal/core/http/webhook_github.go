package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/cryptly-dev/cryptly/internal/core/service"
	"github.com/cryptly-dev/cryptly/pkg/coresdk"
	"github.com/cryptly-dev/cryptly/pkg/httpx"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

// maxWebhookBody caps inbound webhook payloads at 1 MiB.
const maxWebhookBody = 1 << 20

type GitHubWebhookHandler struct {
	WebhookService *service.WebhookService
}

// ServeHTTP godoc
//
//	@Summary		GitHub Webhook Endpoint
//	@Description	Receive a GitHub webhook delivery. The X-Hub-Signature-256 header is verified against
//	@Description	the raw request body before any parsing happens; deliveries with a missing or invalid
//	@Description	signature get the same generic rejection.
//	@Tags			Webhooks
//	@Accept			json
//	@Param			X-GitHub-Event			header	string	true	"GitHub event name"
//	@Param			X-Hub-Signature-256		header	string	true	"HMAC-SHA256 signature, sha256=<hex>"
//	@Success		202
//	@Failure		401	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Router			/webhooks/github [post].
func (h *GitHubWebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Verification must run over the exact bytes on the wire, so read the
	// body before any decoding.
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Failed to read request body",
		})
		return
	}

	eventName := r.Header.Get("X-GitHub-Event")
	signature := r.Header.Get("X-Hub-Signature-256")

	if err := h.WebhookService.Process(ctx, eventName, body, signature); err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			// Same response for missing, malformed and mismatched signatures.
			httpx.WriteJSON(w, http.StatusUnauthorized, coresdk.ErrorResponse{
				Error:            "invalid_signature",
				ErrorDescription: "Signature verification failed",
			})
			return
		}
		log.Error("failed to process webhook", "event", eventName, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to process webhook",
		})
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
