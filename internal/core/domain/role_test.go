package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	t.Run("accepts the closed set", func(t *testing.T) {
		for _, label := range []string{"read", "write", "admin"} {
			role, err := ParseRole(label)
			require.NoError(t, err)
			require.Equal(t, label, role.String())
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, label := range []string{"", "owner", "READ", "Admin", "superuser"} {
			_, err := ParseRole(label)
			require.ErrorIs(t, err, ErrInvalidRole, "label %q", label)
		}
	})
}

func TestCompareRoles(t *testing.T) {
	t.Parallel()

	t.Run("total order read < write < admin", func(t *testing.T) {
		cmp, err := CompareRoles(RoleRead, RoleWrite)
		require.NoError(t, err)
		require.Equal(t, -1, cmp)

		cmp, err = CompareRoles(RoleWrite, RoleAdmin)
		require.NoError(t, err)
		require.Equal(t, -1, cmp)

		cmp, err = CompareRoles(RoleAdmin, RoleRead)
		require.NoError(t, err)
		require.Equal(t, 1, cmp)

		cmp, err = CompareRoles(RoleWrite, RoleWrite)
		require.NoError(t, err)
		require.Equal(t, 0, cmp)
	})

	t.Run("invalid roles are a hard failure", func(t *testing.T) {
		_, err := CompareRoles(Role("owner"), RoleRead)
		require.ErrorIs(t, err, ErrInvalidRole)

		_, err = CompareRoles(RoleRead, Role(""))
		require.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestRoleAtLeast(t *testing.T) {
	t.Parallel()

	t.Run("higher roles cover lower requirements", func(t *testing.T) {
		require.True(t, RoleAdmin.AtLeast(RoleRead))
		require.True(t, RoleAdmin.AtLeast(RoleWrite))
		require.True(t, RoleAdmin.AtLeast(RoleAdmin))
		require.True(t, RoleWrite.AtLeast(RoleRead))
		require.True(t, RoleRead.AtLeast(RoleRead))
	})

	t.Run("lower roles never cover higher requirements", func(t *testing.T) {
		require.False(t, RoleRead.AtLeast(RoleWrite))
		require.False(t, RoleRead.AtLeast(RoleAdmin))
		require.False(t, RoleWrite.AtLeast(RoleAdmin))
	})

	t.Run("fails safe on invalid roles", func(t *testing.T) {
		require.False(t, Role("owner").AtLeast(RoleRead))
		require.False(t, RoleAdmin.AtLeast(Role("owner")))
	})
}
