package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/pkg/cryptox"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

// ErrInvalidSignature rejects a webhook whose signature did not verify. The
// transport layer surfaces it as a generic unauthorized response with no
// detail about which check failed.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// WebhookHandler consumes a verified webhook delivery.
type WebhookHandler func(ctx context.Context, eventName string, body []byte) error

// WebhookService gates the inbound webhook channel. Verification runs over
// the exact raw request bytes before any parsing layer touches them; a
// failed check stops the request before any handler sees it.
type WebhookService struct {
	Secret  []byte
	Events  *EventEmitter
	Handler WebhookHandler // optional downstream consumer
}

// Process verifies and dispatches one delivery. signatureHeader is the raw
// X-Hub-Signature-256 value; eventName the X-GitHub-Event value.
func (s *WebhookService) Process(ctx context.Context, eventName string, body []byte, signatureHeader string) error {
	log := slogx.FromContext(ctx)

	if !cryptox.VerifySignature(body, signatureHeader, s.Secret) {
		log.Warn("webhook signature verification failed",
			slog.String("event", eventName),
			slog.Int("body_bytes", len(body)),
		)
		return ErrInvalidSignature
	}

	s.Events.Emit(domain.Event{
		Type:      domain.EventWebhookReceived,
		SubjectID: eventName,
	})

	if s.Handler != nil {
		return s.Handler(ctx, eventName, body)
	}

	log.Debug("webhook accepted", slog.String("event", eventName))
	return nil
}
