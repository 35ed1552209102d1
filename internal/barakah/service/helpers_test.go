package service

import (
	"context"
	"testing"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store/drivers/sqlite"
	"github.com/AnthonyMuncherz/barakahbot/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a fresh in-memory database with migrations applied and
// the two roles seeded.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	ctx := context.Background()
	for _, name := range []string{domain.RoleAdmin, domain.RoleDonor} {
		require.NoError(t, st.Roles().CreateRole(ctx, domain.Role{
			ID:   idx.New().String(),
			Name: name,
		}))
	}
	return st
}

func seedCategory(t *testing.T, st store.Store) domain.Category {
	t.Helper()

	category := domain.Category{
		ID:   idx.New().String(),
		Name: "Education",
	}
	require.NoError(t, st.Categories().CreateCategory(context.Background(), category))
	return category
}
