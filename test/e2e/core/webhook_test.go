package core_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/cryptly-dev/cryptly/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func postWebhook(t *testing.T, url string, body []byte, headers map[string]string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, url+"/webhooks/github", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestWebhookDelivery(t *testing.T) {
	env := newTestEnv(t)
	body := []byte(`{"action":"push","repository":{"full_name":"cryptly-dev/cryptly"}}`)

	t.Run("valid signature is accepted", func(t *testing.T) {
		resp := postWebhook(t, env.server.URL, body, map[string]string{
			"X-GitHub-Event":      "push",
			"X-Hub-Signature-256": cryptox.SignPayload([]byte(testWebhookSecret), body),
		})
		require.Equal(t, http.StatusAccepted, resp.StatusCode)
	})

	t.Run("missing signature is rejected", func(t *testing.T) {
		resp := postWebhook(t, env.server.URL, body, map[string]string{
			"X-GitHub-Event": "push",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		resp := postWebhook(t, env.server.URL, body, map[string]string{
			"X-GitHub-Event":      "push",
			"X-Hub-Signature-256": cryptox.SignPayload([]byte("not-the-secret"), body),
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("signature over different bytes is rejected", func(t *testing.T) {
		resp := postWebhook(t, env.server.URL, []byte(`{"action":"tampered"}`), map[string]string{
			"X-GitHub-Event":      "push",
			"X-Hub-Signature-256": cryptox.SignPayload([]byte(testWebhookSecret), body),
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
