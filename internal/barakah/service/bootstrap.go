package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/pkg/cryptox"
	"github.com/AnthonyMuncherz/barakahbot/pkg/idx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

var ErrBootstrapIncomplete = errors.New("service: admin email and password required for first run")

// BootstrapService seeds the roles table and the first back-office account
// on an empty database. Subsequent startups are no-ops.
type BootstrapService struct {
	Store         store.Store
	AdminEmail    string
	AdminPassword string
}

// Bootstrap is safe to call on every startup; it only writes when both the
// roles and users tables are empty.
func (s *BootstrapService) Bootstrap(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	rolesEmpty, err := s.Store.Roles().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("checking roles: %w", err)
	}
	usersEmpty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("checking users: %w", err)
	}
	if !rolesEmpty && !usersEmpty {
		return nil
	}

	if s.AdminEmail == "" || s.AdminPassword == "" {
		return ErrBootstrapIncomplete
	}

	passHash, err := cryptox.HashPassword(s.AdminPassword)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	adminUserID := idx.New().String()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		adminRoleID, err := ensureRole(ctx, tx, domain.RoleAdmin)
		if err != nil {
			return err
		}
		if _, err := ensureRole(ctx, tx, domain.RoleDonor); err != nil {
			return err
		}

		if !usersEmpty {
			return nil
		}
		return tx.Users().CreateUser(ctx, domain.User{
			ID:           adminUserID,
			Email:        strings.ToLower(s.AdminEmail),
			Name:         "Administrator",
			PasswordHash: passHash,
			RoleID:       adminRoleID,
		})
	})
	if err != nil {
		return fmt.Errorf("seeding first run: %w", err)
	}

	l.Info("bootstrapped first run", slog.String("admin_user_id", adminUserID))
	return nil
}

func ensureRole(ctx context.Context, tx store.Tx, name string) (string, error) {
	role, err := tx.Roles().GetRoleByName(ctx, name)
	if err == nil {
		return role.ID, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("loading role %q: %w", name, err)
	}

	id := idx.New().String()
	if err := tx.Roles().CreateRole(ctx, domain.Role{ID: id, Name: name}); err != nil {
		return "", fmt.Errorf("creating role %q: %w", name, err)
	}
	return id, nil
}
