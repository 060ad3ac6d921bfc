package core_test

import (
	"context"
	"crypto/rand"
	"net/http"
	"testing"

	"github.com/cryptly-dev/cryptly/pkg/coresdk"
	"github.com/cryptly-dev/cryptly/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

// The full key handover, both sides played by real client code: the inviter
// wraps the project secrets key under an ephemeral public key, the invitee
// accepts and unwraps it with the released private key. The server in the
// middle only ever sees opaque strings.
func TestInvitationKeyHandover(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	alice := env.clientFor(t, "alice")
	bob := env.clientFor(t, "bob")

	project, err := alice.CreateProject(ctx, coresdk.CreateProjectRequest{Name: "payments"})
	require.NoError(t, err)

	// Inviter side: ephemeral key pair plus wrapped secrets key.
	secretsKey := make([]byte, 32)
	_, err = rand.Read(secretsKey)
	require.NoError(t, err)

	kp, err := cryptox.GenerateWrapKeyPair()
	require.NoError(t, err)
	wrapped, err := cryptox.WrapKey(secretsKey, kp.PublicKey)
	require.NoError(t, err)

	inv, err := alice.IssueInvitation(ctx, coresdk.IssueInvitationRequest{
		ProjectID:         project.ID,
		Role:              "write",
		TempPublicKey:     kp.PublicKey,
		TempPrivateKey:    kp.PrivateKey,
		WrappedSecretsKey: wrapped,
	})
	require.NoError(t, err)
	require.Equal(t, "write", inv.Role)

	// Invitee side: accept, then recover the secrets key locally.
	granted, err := bob.AcceptInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, project.ID, granted.ProjectID)

	recovered, err := cryptox.UnwrapKey(granted.WrappedSecretsKey, granted.TempPublicKey, granted.TempPrivateKey)
	require.NoError(t, err)
	require.Equal(t, secretsKey, recovered)

	// Membership is live immediately.
	require.NoError(t, bob.UpdateSecrets(ctx, project.ID, coresdk.UpdateSecretsRequest{
		EncryptedSecrets: "ciphertext-v2",
	}))

	got, err := bob.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, "ciphertext-v2", got.EncryptedSecrets)
}

func TestInvitationSingleUse(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	alice := env.clientFor(t, "alice")
	bob := env.clientFor(t, "bob")
	carol := env.clientFor(t, "carol")

	project, err := alice.CreateProject(ctx, coresdk.CreateProjectRequest{Name: "payments"})
	require.NoError(t, err)

	inv, err := alice.IssueInvitation(ctx, coresdk.IssueInvitationRequest{
		ProjectID:         project.ID,
		Role:              "read",
		TempPublicKey:     "pub",
		TempPrivateKey:    "priv",
		WrappedSecretsKey: "wrapped",
	})
	require.NoError(t, err)

	_, err = bob.AcceptInvitation(ctx, inv.ID)
	require.NoError(t, err)

	// The second redeemer gets a conflict and no membership.
	_, err = carol.AcceptInvitation(ctx, inv.ID)
	requireAPIError(t, err, http.StatusConflict, coresdk.ErrorCodeConflict)

	_, err = carol.GetProject(ctx, project.ID)
	requireAPIError(t, err, http.StatusForbidden, coresdk.ErrorCodeAccessDenied)
}

func TestInvitationRoleCeiling(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	alice := env.clientFor(t, "alice")
	bob := env.clientFor(t, "bob")

	project, err := alice.CreateProject(ctx, coresdk.CreateProjectRequest{Name: "payments"})
	require.NoError(t, err)

	// Bring bob in at Write.
	inv, err := alice.IssueInvitation(ctx, coresdk.IssueInvitationRequest{
		ProjectID:         project.ID,
		Role:              "write",
		TempPublicKey:     "pub",
		TempPrivateKey:    "priv",
		WrappedSecretsKey: "wrapped",
	})
	require.NoError(t, err)
	_, err = bob.AcceptInvitation(ctx, inv.ID)
	require.NoError(t, err)

	// A Write member cannot mint an Admin invitation.
	_, err = bob.IssueInvitation(ctx, coresdk.IssueInvitationRequest{
		ProjectID:         project.ID,
		Role:              "admin",
		TempPublicKey:     "pub",
		TempPrivateKey:    "priv",
		WrappedSecretsKey: "wrapped",
	})
	requireAPIError(t, err, http.StatusForbidden, coresdk.ErrorCodeAccessDenied)

	// At their own level is fine.
	_, err = bob.IssueInvitation(ctx, coresdk.IssueInvitationRequest{
		ProjectID:         project.ID,
		Role:              "write",
		TempPublicKey:     "pub",
		TempPrivateKey:    "priv",
		WrappedSecretsKey: "wrapped",
	})
	require.NoError(t, err)
}

func TestInvitationRevocation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	alice := env.clientFor(t, "alice")
	bob := env.clientFor(t, "bob")

	project, err := alice.CreateProject(ctx, coresdk.CreateProjectRequest{Name: "payments"})
	require.NoError(t, err)

	inv, err := alice.IssueInvitation(ctx, coresdk.IssueInvitationRequest{
		ProjectID:         project.ID,
		Role:              "read",
		TempPublicKey:     "pub",
		TempPrivateKey:    "priv",
		WrappedSecretsKey: "wrapped",
	})
	require.NoError(t, err)

	require.NoError(t, alice.RevokeInvitation(ctx, inv.ID))

	// Idempotent.
	require.NoError(t, alice.RevokeInvitation(ctx, inv.ID))

	// A revoked invitation is dead.
	_, err = bob.AcceptInvitation(ctx, inv.ID)
	requireAPIError(t, err, http.StatusConflict, coresdk.ErrorCodeConflict)
}

func TestInvitationRequiresAuth(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.anonClient().IssueInvitation(ctx, coresdk.IssueInvitationRequest{
		ProjectID:         "whatever",
		Role:              "read",
		TempPublicKey:     "pub",
		TempPrivateKey:    "priv",
		WrappedSecretsKey: "wrapped",
	})
	require.Error(t, err)
	apiErr, ok := err.(*coresdk.APIError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
