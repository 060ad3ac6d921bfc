package core_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "github.com/cryptly-dev/cryptly/internal/core/http"
	"github.com/cryptly-dev/cryptly/internal/core/service"
	"github.com/cryptly-dev/cryptly/internal/core/store/drivers/sqlite"
	"github.com/cryptly-dev/cryptly/pkg/coresdk"
	"github.com/cryptly-dev/cryptly/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for core service end-to-end tests. The whole stack runs
 * in-process: in-memory SQLite store, real router, real middleware, httptest
 * server. Tokens are minted with a test Ed25519 key whose public half feeds
 * the verifier, exactly like a deployment where the identity provider holds
 * the private key.
 */

const (
	testIssuer        = "cryptly-auth"
	testWebhookSecret = "e2e-webhook-secret"
)

type testEnv struct {
	server *httptest.Server
	signer *jwtx.EdDSASigner
	events *service.EventEmitter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := service.NewEventEmitter(64, logger)
	access := &service.AccessService{Store: st}

	router := httpapi.NewRouter(jwtx.NewVerifierEdDSA(pub, testIssuer), "test", st, logger)
	router.ProjectService = &service.ProjectService{Store: st, Access: access}
	router.InvitationService = &service.InvitationService{Store: st, Access: access, Events: events}
	router.DeviceService = &service.DeviceService{Store: st, Events: events}
	router.WebhookService = &service.WebhookService{Secret: []byte(testWebhookSecret), Events: events}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		server: server,
		signer: jwtx.NewSignerFromKey(priv),
		events: events,
	}
}

// clientFor returns an SDK client authenticated as the given user.
func (e *testEnv) clientFor(t *testing.T, userID string) *coresdk.Client {
	t.Helper()

	token, err := e.signer.Sign(jwtx.NewAccessClaims(userID, testIssuer, time.Hour, time.Now()))
	require.NoError(t, err)
	return coresdk.NewClient(e.server.URL).WithToken(token)
}

// anonClient returns an SDK client with no token.
func (e *testEnv) anonClient() *coresdk.Client {
	return coresdk.NewClient(e.server.URL)
}

// requireAPIError asserts err is an *coresdk.APIError with the given status
// and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*coresdk.APIError)
	require.True(t, ok, "expected *coresdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
