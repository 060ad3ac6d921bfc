package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/internal/core/store"
	"github.com/cryptly-dev/cryptly/pkg/idx"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

var (
	ErrInvalidProjectRequest = errors.New("invalid project request")

	// ErrLastAdmin: the operation would leave the project without any Admin
	// member, which is never allowed.
	ErrLastAdmin = errors.New("project must keep at least one admin")

	ErrMemberNotFound = errors.New("member not found")
)

// ProjectService owns the project surface the guard protects: creation,
// reads, secrets payload replacement and membership edits. The secrets
// payload is ciphertext produced client-side; the service stores it blindly.
type ProjectService struct {
	Store  store.Store
	Access *AccessService
}

// CreateProject creates a project with the creator as its sole Admin. This
// is what establishes the at-least-one-Admin invariant every other
// operation preserves.
func (s *ProjectService) CreateProject(ctx context.Context, creatorID, name string) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	if creatorID == "" || name == "" {
		return domain.Project{}, ErrInvalidProjectRequest
	}

	project := domain.Project{
		ID:   idx.New().String(),
		Name: name,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().CreateProject(ctx, project); err != nil {
			return err
		}
		return tx.Projects().SetMembership(ctx, project.ID, map[string]domain.Role{
			creatorID: domain.RoleAdmin,
		})
	})
	if err != nil {
		log.Error("failed to create project", slog.Any("error", err))
		return domain.Project{}, err
	}

	log.Info("project created",
		slog.String("project_id", project.ID),
		slog.String("creator_id", creatorID),
	)
	return project, nil
}

// GetProject returns a project to any member (Read or above).
func (s *ProjectService) GetProject(ctx context.Context, callerID, projectID string) (domain.Project, error) {
	if err := s.Access.Authorize(ctx, callerID, projectID, domain.RoleRead); err != nil {
		return domain.Project{}, err
	}
	p, err := s.Store.Projects().GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return p, nil
}

// Members returns the membership map to any member.
func (s *ProjectService) Members(ctx context.Context, callerID, projectID string) (map[string]domain.Role, error) {
	if err := s.Access.Authorize(ctx, callerID, projectID, domain.RoleRead); err != nil {
		return nil, err
	}
	return s.Store.Projects().GetMembership(ctx, projectID)
}

// UpdateSecrets replaces the project's encrypted secrets payload. Requires
// Write. The ciphertext is opaque here; encryption happened on the client.
func (s *ProjectService) UpdateSecrets(ctx context.Context, callerID, projectID, ciphertext string) error {
	if err := s.Access.Authorize(ctx, callerID, projectID, domain.RoleWrite); err != nil {
		return err
	}

	if err := s.Store.Projects().UpdateEncryptedSecrets(ctx, projectID, ciphertext); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Debug("project secrets updated",
		slog.String("project_id", projectID),
		slog.String("caller_id", callerID),
	)
	return nil
}

// SetMemberRole changes an existing member's role. Requires Admin. Demoting
// the last Admin is rejected: the membership rewrite happens in the same
// transaction as the check, so concurrent demotions cannot slip through.
func (s *ProjectService) SetMemberRole(ctx context.Context, callerID, projectID, userID string, role domain.Role) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}
	if err := s.Access.Authorize(ctx, callerID, projectID, domain.RoleAdmin); err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		members, err := tx.Projects().GetMembership(ctx, projectID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProjectNotFound
			}
			return err
		}

		current, ok := members[userID]
		if !ok {
			return ErrMemberNotFound
		}

		if current == domain.RoleAdmin && role != domain.RoleAdmin && adminCount(members) == 1 {
			return ErrLastAdmin
		}

		members[userID] = role
		return tx.Projects().SetMembership(ctx, projectID, members)
	})
}

// RemoveMember drops a member from the project. Requires Admin. Removing the
// last Admin is rejected.
func (s *ProjectService) RemoveMember(ctx context.Context, callerID, projectID, userID string) error {
	if err := s.Access.Authorize(ctx, callerID, projectID, domain.RoleAdmin); err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		members, err := tx.Projects().GetMembership(ctx, projectID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProjectNotFound
			}
			return err
		}

		current, ok := members[userID]
		if !ok {
			return ErrMemberNotFound
		}

		if current == domain.RoleAdmin && adminCount(members) == 1 {
			return ErrLastAdmin
		}

		delete(members, userID)
		return tx.Projects().SetMembership(ctx, projectID, members)
	})
}

func adminCount(members map[string]domain.Role) int {
	n := 0
	for _, role := range members {
		if role == domain.RoleAdmin {
			n++
		}
	}
	return n
}
