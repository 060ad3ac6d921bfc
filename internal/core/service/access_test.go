package service

import (
	"context"
	"testing"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	access := &AccessService{Store: st}

	project := seedProject(t, st, map[string]domain.Role{
		"alice": domain.RoleAdmin,
		"bob":   domain.RoleWrite,
		"carol": domain.RoleRead,
	})

	t.Run("admin passes every requirement", func(t *testing.T) {
		for _, required := range []domain.Role{domain.RoleRead, domain.RoleWrite, domain.RoleAdmin} {
			require.NoError(t, access.Authorize(ctx, "alice", project.ID, required))
		}
	})

	t.Run("write passes read and write, fails admin", func(t *testing.T) {
		require.NoError(t, access.Authorize(ctx, "bob", project.ID, domain.RoleRead))
		require.NoError(t, access.Authorize(ctx, "bob", project.ID, domain.RoleWrite))
		require.ErrorIs(t, access.Authorize(ctx, "bob", project.ID, domain.RoleAdmin), ErrInsufficientRole)
	})

	t.Run("read passes only read", func(t *testing.T) {
		require.NoError(t, access.Authorize(ctx, "carol", project.ID, domain.RoleRead))
		require.ErrorIs(t, access.Authorize(ctx, "carol", project.ID, domain.RoleWrite), ErrInsufficientRole)
		require.ErrorIs(t, access.Authorize(ctx, "carol", project.ID, domain.RoleAdmin), ErrInsufficientRole)
	})

	t.Run("non-member is denied regardless of requirement", func(t *testing.T) {
		for _, required := range []domain.Role{domain.RoleRead, domain.RoleWrite, domain.RoleAdmin} {
			require.ErrorIs(t, access.Authorize(ctx, "mallory", project.ID, required), ErrNotAMember)
		}
	})

	t.Run("unknown project is denied", func(t *testing.T) {
		err := access.Authorize(ctx, "alice", "no-such-project", domain.RoleRead)
		require.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("every denial collapses for the transport layer", func(t *testing.T) {
		require.True(t, IsAccessDenied(ErrProjectNotFound))
		require.True(t, IsAccessDenied(ErrNotAMember))
		require.True(t, IsAccessDenied(ErrInsufficientRole))
		require.False(t, IsAccessDenied(ErrInvalidProjectRequest))
	})
}

func TestMemberRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	access := &AccessService{Store: st}

	project := seedProject(t, st, map[string]domain.Role{
		"alice": domain.RoleAdmin,
	})

	role, err := access.MemberRole(ctx, "alice", project.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, role)

	_, err = access.MemberRole(ctx, "mallory", project.ID)
	require.ErrorIs(t, err, ErrNotAMember)
}
