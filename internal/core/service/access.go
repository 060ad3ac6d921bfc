package service

import (
	"context"
	"errors"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/internal/core/store"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

var (
	// ErrProjectNotFound: the target project does not exist. Distinct from
	// ErrNotAMember so internal callers can tell the cases apart; the HTTP
	// layer collapses both into one opaque denial.
	ErrProjectNotFound = errors.New("project not found")

	// ErrNotAMember: the project exists but the caller is not in its
	// membership map.
	ErrNotAMember = errors.New("caller is not a project member")

	// ErrInsufficientRole: the caller is a member but below the required
	// level.
	ErrInsufficientRole = errors.New("insufficient role")
)

// AccessService decides permit/deny for project-scoped operations. It is a
// pure function of current store state: the membership read is its only I/O
// and it never mutates anything. Nothing is cached across calls; these are
// security decisions, correctness beats latency.
type AccessService struct {
	Store store.Store
}

// Authorize permits the caller when their membership role grants at least
// the required level. A nil return is a permit; every deny is one of the
// sentinel errors above. Store failures other than not-found propagate as-is
// so callers can distinguish infrastructure faults from denials.
func (s *AccessService) Authorize(ctx context.Context, callerID, projectID string, required domain.Role) error {
	role, err := s.MemberRole(ctx, callerID, projectID)
	if err != nil {
		return err
	}

	if !role.AtLeast(required) {
		slogx.FromContext(ctx).Warn("authorization denied",
			"caller_id", callerID,
			"project_id", projectID,
			"caller_role", role.String(),
			"required_role", required.String(),
		)
		return ErrInsufficientRole
	}

	return nil
}

// MemberRole resolves the caller's role on a project, distinguishing a
// missing project from a missing membership.
func (s *AccessService) MemberRole(ctx context.Context, callerID, projectID string) (domain.Role, error) {
	members, err := s.Store.Projects().GetMembership(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrProjectNotFound
		}
		return "", err
	}

	role, ok := members[callerID]
	if !ok {
		return "", ErrNotAMember
	}
	return role, nil
}

// IsAccessDenied reports whether err is one of the authorization denials
// that the transport layer should collapse into a single opaque response.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrNotAMember) ||
		errors.Is(err, ErrInsufficientRole)
}
