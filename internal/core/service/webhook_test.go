package service

import (
	"context"
	"testing"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestWebhookProcess(t *testing.T) {
	ctx := context.Background()
	secret := []byte("webhook-secret")
	body := []byte(`{"action":"push","repository":{"full_name":"cryptly-dev/cryptly"}}`)

	t.Run("valid signature is accepted and emits an event", func(t *testing.T) {
		events := newTestEmitter()
		svc := &WebhookService{Secret: secret, Events: events}

		sig := cryptox.SignPayload(secret, body)
		require.NoError(t, svc.Process(ctx, "push", body, sig))

		ev := <-events.Events()
		require.Equal(t, domain.EventWebhookReceived, ev.Type)
		require.Equal(t, "push", ev.SubjectID)
	})

	t.Run("missing signature is rejected", func(t *testing.T) {
		svc := &WebhookService{Secret: secret, Events: newTestEmitter()}
		require.ErrorIs(t, svc.Process(ctx, "push", body, ""), ErrInvalidSignature)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		svc := &WebhookService{Secret: secret, Events: newTestEmitter()}
		sig := cryptox.SignPayload([]byte("other-secret"), body)
		require.ErrorIs(t, svc.Process(ctx, "push", body, sig), ErrInvalidSignature)
	})

	t.Run("tampered body is rejected", func(t *testing.T) {
		svc := &WebhookService{Secret: secret, Events: newTestEmitter()}
		sig := cryptox.SignPayload(secret, body)
		tampered := append([]byte{}, body...)
		tampered[0] ^= 0x01
		require.ErrorIs(t, svc.Process(ctx, "push", tampered, sig), ErrInvalidSignature)
	})

	t.Run("downstream handler sees the verified delivery", func(t *testing.T) {
		var gotEvent string
		var gotBody []byte
		svc := &WebhookService{
			Secret: secret,
			Events: newTestEmitter(),
			Handler: func(ctx context.Context, eventName string, body []byte) error {
				gotEvent = eventName
				gotBody = body
				return nil
			},
		}

		sig := cryptox.SignPayload(secret, body)
		require.NoError(t, svc.Process(ctx, "release", body, sig))
		require.Equal(t, "release", gotEvent)
		require.Equal(t, body, gotBody)
	})

	t.Run("handler never runs on a bad signature", func(t *testing.T) {
		called := false
		svc := &WebhookService{
			Secret: secret,
			Events: newTestEmitter(),
			Handler: func(ctx context.Context, eventName string, body []byte) error {
				called = true
				return nil
			},
		}

		require.ErrorIs(t, svc.Process(ctx, "push", body, "sha256=deadbeef"), ErrInvalidSignature)
		require.False(t, called)
	})
}
