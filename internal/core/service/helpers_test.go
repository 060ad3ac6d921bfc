package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/internal/core/store"
	"github.com/cryptly-dev/cryptly/internal/core/store/drivers/sqlite"
	"github.com/cryptly-dev/cryptly/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestEmitter() *EventEmitter {
	return NewEventEmitter(16, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// seedProject creates a project with the given membership map.
func seedProject(t *testing.T, st store.Store, members map[string]domain.Role) domain.Project {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC()
	project := domain.Project{
		ID:        idx.New().String(),
		Name:      "test-project",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Projects().CreateProject(ctx, project))
	require.NoError(t, st.Projects().SetMembership(ctx, project.ID, members))
	return project
}
