package service

import (
	"context"
	"testing"
	"time"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/internal/core/store"
	"github.com/cryptly-dev/cryptly/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newInvitationService(st store.Store) *InvitationService {
	return &InvitationService{
		Store:  st,
		Access: &AccessService{Store: st},
		Events: newTestEmitter(),
	}
}

// seedInvitation inserts an invitation directly, bypassing Issue, so tests
// can control the deadline.
func seedInvitation(t *testing.T, st store.Store, projectID string, role domain.Role, expiresAt time.Time) domain.Invitation {
	t.Helper()

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:                idx.New().String(),
		ProjectID:         projectID,
		Role:              role,
		TempPublicKey:     "pub-key",
		TempPrivateKey:    "priv-key",
		WrappedSecretsKey: "wrapped-key",
		State:             domain.InvitationIssued,
		CreatedBy:         "alice",
		ExpiresAt:         expiresAt,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, st.Invitations().CreateInvitation(context.Background(), inv))
	return inv
}

func TestIssueInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st)

	project := seedProject(t, st, map[string]domain.Role{
		"alice": domain.RoleAdmin,
		"bob":   domain.RoleWrite,
		"carol": domain.RoleRead,
	})

	t.Run("admin can issue at any role", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleRead, domain.RoleWrite, domain.RoleAdmin} {
			inv, err := svc.Issue(ctx, "alice", project.ID, role, "pub", "priv", "wrapped")
			require.NoError(t, err)
			require.Equal(t, role, inv.Role)
			require.Equal(t, domain.InvitationIssued, inv.State)
			require.True(t, inv.ExpiresAt.After(time.Now()))
		}
	})

	t.Run("write member cannot issue above their role", func(t *testing.T) {
		_, err := svc.Issue(ctx, "bob", project.ID, domain.RoleAdmin, "pub", "priv", "wrapped")
		require.ErrorIs(t, err, ErrInsufficientRole)

		_, err = svc.Issue(ctx, "bob", project.ID, domain.RoleWrite, "pub", "priv", "wrapped")
		require.NoError(t, err)
	})

	t.Run("read member cannot issue write", func(t *testing.T) {
		_, err := svc.Issue(ctx, "carol", project.ID, domain.RoleWrite, "pub", "priv", "wrapped")
		require.ErrorIs(t, err, ErrInsufficientRole)
	})

	t.Run("non-member cannot issue", func(t *testing.T) {
		_, err := svc.Issue(ctx, "mallory", project.ID, domain.RoleRead, "pub", "priv", "wrapped")
		require.ErrorIs(t, err, ErrNotAMember)
	})

	t.Run("rejects invalid role before anything else", func(t *testing.T) {
		_, err := svc.Issue(ctx, "alice", project.ID, domain.Role("owner"), "pub", "priv", "wrapped")
		require.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("rejects missing key material", func(t *testing.T) {
		_, err := svc.Issue(ctx, "alice", project.ID, domain.RoleRead, "", "priv", "wrapped")
		require.ErrorIs(t, err, ErrInvalidInvitationRequest)

		_, err = svc.Issue(ctx, "alice", project.ID, domain.RoleRead, "pub", "priv", "")
		require.ErrorIs(t, err, ErrInvalidInvitationRequest)
	})
}

func TestAcceptInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("grants membership and releases key material once", func(t *testing.T) {
		st := newTestStore(t)
		svc := newInvitationService(st)
		project := seedProject(t, st, map[string]domain.Role{"alice": domain.RoleAdmin})

		inv, err := svc.Issue(ctx, "alice", project.ID, domain.RoleWrite, "pub", "priv", "wrapped")
		require.NoError(t, err)

		granted, err := svc.Accept(ctx, inv.ID, "bob")
		require.NoError(t, err)
		require.Equal(t, project.ID, granted.ProjectID)
		require.Equal(t, domain.RoleWrite, granted.Role)
		require.Equal(t, "priv", granted.TempPrivateKey)
		require.Equal(t, "wrapped", granted.WrappedSecretsKey)

		members, err := st.Projects().GetMembership(ctx, project.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleWrite, members["bob"])

		// The stored private key is gone.
		stored, err := st.Invitations().GetInvitation(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, stored.State)
		require.Empty(t, stored.TempPrivateKey)
	})

	t.Run("second accept fails, membership unchanged", func(t *testing.T) {
		st := newTestStore(t)
		svc := newInvitationService(st)
		project := seedProject(t, st, map[string]domain.Role{"alice": domain.RoleAdmin})

		inv, err := svc.Issue(ctx, "alice", project.ID, domain.RoleRead, "pub", "priv", "wrapped")
		require.NoError(t, err)

		_, err = svc.Accept(ctx, inv.ID, "bob")
		require.NoError(t, err)

		_, err = svc.Accept(ctx, inv.ID, "carol")
		require.ErrorIs(t, err, ErrInvitationNotRedeemable)

		members, err := st.Projects().GetMembership(ctx, project.ID)
		require.NoError(t, err)
		require.NotContains(t, members, "carol")
	})

	t.Run("expired invitation cannot be accepted", func(t *testing.T) {
		st := newTestStore(t)
		svc := newInvitationService(st)
		project := seedProject(t, st, map[string]domain.Role{"alice": domain.RoleAdmin})

		inv := seedInvitation(t, st, project.ID, domain.RoleRead, time.Now().UTC().Add(-time.Minute))

		_, err := svc.Accept(ctx, inv.ID, "bob")
		require.ErrorIs(t, err, ErrInvitationExpired)

		// The deadline pass is recorded as an explicit terminal state.
		stored, err := st.Invitations().GetInvitation(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationExpired, stored.State)

		members, err := st.Projects().GetMembership(ctx, project.ID)
		require.NoError(t, err)
		require.NotContains(t, members, "bob")
	})

	t.Run("unknown invitation", func(t *testing.T) {
		st := newTestStore(t)
		svc := newInvitationService(st)

		_, err := svc.Accept(ctx, "no-such-invitation", "bob")
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("accepting again as an existing member keeps the higher role", func(t *testing.T) {
		st := newTestStore(t)
		svc := newInvitationService(st)
		project := seedProject(t, st, map[string]domain.Role{
			"alice": domain.RoleAdmin,
			"bob":   domain.RoleRead,
		})

		inv, err := svc.Issue(ctx, "alice", project.ID, domain.RoleWrite, "pub", "priv", "wrapped")
		require.NoError(t, err)

		_, err = svc.Accept(ctx, inv.ID, "bob")
		require.NoError(t, err)

		members, err := st.Projects().GetMembership(ctx, project.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleWrite, members["bob"])
	})

	t.Run("accepting a lower-role invitation never demotes", func(t *testing.T) {
		st := newTestStore(t)
		svc := newInvitationService(st)
		project := seedProject(t, st, map[string]domain.Role{
			"alice": domain.RoleAdmin,
			"bob":   domain.RoleWrite,
		})

		inv, err := svc.Issue(ctx, "bob", project.ID, domain.RoleRead, "pub", "priv", "wrapped")
		require.NoError(t, err)

		granted, err := svc.Accept(ctx, inv.ID, "alice")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, granted.Role)

		members, err := st.Projects().GetMembership(ctx, project.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, members["alice"])
	})
}

func TestRevokeInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("admin revokes an issued invitation", func(t *testing.T) {
		st := newTestStore(t)
		svc := newInvitationService(st)
		project := seedProject(t, st, map[string]domain.Role{"alice": domain.RoleAdmin})

		inv, err := svc.Issue(ctx, "alice", project.ID, domain.RoleRead, "pub", "priv", "wrapped")
		require.NoError(t, err)

		require.NoError(t, svc.Revoke(ctx, "alice", inv.ID))

		_, err = svc.Accept(ctx, inv.ID, "bob")
		require.ErrorIs(t, err, ErrInvitationNotRedeemable)
	})

	t.Run("revoking twice is a no-op success", func(t *testing.T) {
		st := newTestStore(t)
		svc := newInvitationService(st)
		project := seedProject(t, st, map[string]domain.Role{"alice": domain.RoleAdmin})

		inv, err := svc.Issue(ctx, "alice", project.ID, domain.RoleRead, "pub", "priv", "wrapped")
		require.NoError(t, err)

		require.NoError(t, svc.Revoke(ctx, "alice", inv.ID))
		require.NoError(t, svc.Revoke(ctx, "alice", inv.ID))
	})

	t.Run("accepted invitation cannot be revoked", func(t *testing.T) {
		st := newTestStore(t)
		svc := newInvitationService(st)
		project := seedProject(t, st, map[string]domain.Role{"alice": domain.RoleAdmin})

		inv, err := svc.Issue(ctx, "alice", project.ID, domain.RoleRead, "pub", "priv", "wrapped")
		require.NoError(t, err)

		_, err = svc.Accept(ctx, inv.ID, "bob")
		require.NoError(t, err)

		require.ErrorIs(t, svc.Revoke(ctx, "alice", inv.ID), ErrInvitationNotRedeemable)

		// The acceptance stands.
		members, err := st.Projects().GetMembership(ctx, project.ID)
		require.NoError(t, err)
		require.Contains(t, members, "bob")
	})

	t.Run("non-admin cannot revoke", func(t *testing.T) {
		st := newTestStore(t)
		svc := newInvitationService(st)
		project := seedProject(t, st, map[string]domain.Role{
			"alice": domain.RoleAdmin,
			"bob":   domain.RoleWrite,
		})

		inv, err := svc.Issue(ctx, "alice", project.ID, domain.RoleRead, "pub", "priv", "wrapped")
		require.NoError(t, err)

		require.ErrorIs(t, svc.Revoke(ctx, "bob", inv.ID), ErrInsufficientRole)
	})
}

// The whole grant path, end to end at the service layer: admin invites at
// Write, the invitee accepts and can immediately write but not administer.
func TestInvitationGrantFlow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	invitations := newInvitationService(st)
	projects := &ProjectService{Store: st, Access: &AccessService{Store: st}}

	project, err := projects.CreateProject(ctx, "alice", "payments")
	require.NoError(t, err)

	inv, err := invitations.Issue(ctx, "alice", project.ID, domain.RoleWrite, "pub", "priv", "wrapped")
	require.NoError(t, err)

	// Before accepting, the invitee has nothing.
	_, err = projects.GetProject(ctx, "bob", project.ID)
	require.ErrorIs(t, err, ErrNotAMember)

	granted, err := invitations.Accept(ctx, inv.ID, "bob")
	require.NoError(t, err)
	require.Equal(t, "priv", granted.TempPrivateKey)

	// Write works, admin operations do not.
	require.NoError(t, projects.UpdateSecrets(ctx, "bob", project.ID, "ciphertext"))
	err = projects.RemoveMember(ctx, "bob", project.ID, "alice")
	require.ErrorIs(t, err, ErrInsufficientRole)
}
